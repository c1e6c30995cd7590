package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/plasmakit/specdeform/diag"
)

var (
	// ErrQuit indicates the user chose to stop.
	ErrQuit = errors.New("prompt: quit requested")

	// ErrBadInput indicates an argument that does not parse.
	ErrBadInput = errors.New("prompt: invalid input")

	// ErrTooManyArgs indicates more than one command-line override.
	ErrTooManyArgs = errors.New("prompt: too many input arguments")
)

// FloatArg returns def, overridden by a single command-line argument.
// args is os.Args[1:] or a test slice.
func FloatArg(args []string, def float64) (float64, error) {
	switch len(args) {
	case 0:
		return def, nil
	case 1:
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return def, fmt.Errorf("FloatArg %q: %w", args[0], ErrBadInput)
		}
		return v, nil
	}
	return def, fmt.Errorf("FloatArg: %w", ErrTooManyArgs)
}

// IntArg returns def, overridden by a single command-line argument.
func IntArg(args []string, def int) (int, error) {
	switch len(args) {
	case 0:
		return def, nil
	case 1:
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return def, fmt.Errorf("IntArg %q: %w", args[0], ErrBadInput)
		}
		return v, nil
	}
	return def, fmt.Errorf("IntArg: %w", ErrTooManyArgs)
}

// Prompter reads interactive answers from in and writes questions to
// out.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	log *diag.Logger
}

// New builds a Prompter. A nil log gets a stderr sink.
func New(in io.Reader, out io.Writer, log *diag.Logger) *Prompter {
	if log == nil {
		log = diag.New("prompt")
	}
	return &Prompter{in: bufio.NewScanner(in), out: out, log: log}
}

// FloatWithin asks until the answer parses as a float64 inside
// [lo, hi]. Entering 'q' returns ErrQuit.
func (p *Prompter) FloatWithin(lo, hi float64) (float64, error) {
	for {
		line, err := p.ask(fmt.Sprintf("Enter a value in [%g, %g] or q to quit: ", lo, hi))
		if err != nil {
			return 0, err
		}
		if strings.EqualFold(line, "q") {
			p.log.Info("Quit")
			return 0, fmt.Errorf("FloatWithin: %w", ErrQuit)
		}

		v, perr := strconv.ParseFloat(line, 64)
		if perr != nil {
			p.log.Error("Invalid input")
			continue
		}
		if v < lo || v > hi {
			p.log.Error("Out of range")
			continue
		}
		return v, nil
	}
}

// IntWithin asks until the answer parses as an int inside [lo, hi].
// Entering 'q' returns ErrQuit.
func (p *Prompter) IntWithin(lo, hi int) (int, error) {
	for {
		line, err := p.ask(fmt.Sprintf("Enter a value in [%d, %d] or q to quit: ", lo, hi))
		if err != nil {
			return 0, err
		}
		if strings.EqualFold(line, "q") {
			p.log.Info("Quit")
			return 0, fmt.Errorf("IntWithin: %w", ErrQuit)
		}

		v, perr := strconv.Atoi(line)
		if perr != nil {
			p.log.Error("Invalid input")
			continue
		}
		if v < lo || v > hi {
			p.log.Error("Out of range")
			continue
		}
		return v, nil
	}
}

// YesNo gates an expensive stage: yes/y returns true, no/n returns
// false with ErrQuit so the caller can distinguish refusal from
// consent, anything else re-asks.
func (p *Prompter) YesNo() (bool, error) {
	for {
		line, err := p.ask("Enter 'yes' or 'no': ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			p.log.Info("Quit")
			return false, fmt.Errorf("YesNo: %w", ErrQuit)
		}
		p.log.Error("Invalid input")
	}
}

func (p *Prompter) ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", fmt.Errorf("ask: %w", err)
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("ask: %w", err)
		}
		return "", fmt.Errorf("ask: %w", io.EOF)
	}
	return strings.TrimSpace(p.in.Text()), nil
}
