package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"MoneyMarketOptimizer/internal/model"
	"MoneyMarketOptimizer/internal/profile"
	"MoneyMarketOptimizer/internal/tax"
)

var errIncompleteFlags = errors.New("tax settings incomplete: pass --state with --income, or --state with both --federal_tax_rate and --state_tax_rate")

// isInteractive reports whether in is a terminal we can prompt on.
func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func settingsComplete(s profile.Settings) bool {
	if !s.State.IsState() {
		return false
	}
	_, err := s.Source()
	return err == nil
}

// prompter asks for whatever the settings still lack.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) complete(s profile.Settings) (profile.Settings, error) {
	for !s.State.IsState() {
		line, err := p.ask("State of residence (two-letter code, e.g. CA): ")
		if err != nil {
			return s, err
		}
		state, err := model.ParseState(line)
		if err != nil {
			fmt.Fprintf(p.out, "  %v\n", err)
			continue
		}
		s.State = state
	}

	if _, err := s.Source(); err == nil {
		return s, nil
	}

	line, err := p.ask("Annual taxable income in USD (blank to enter marginal rates instead): ")
	if err != nil {
		return s, err
	}
	if line == "" {
		fed, err := p.askPercent("Federal marginal tax rate in percent: ")
		if err != nil {
			return s, err
		}
		state, err := p.askPercent("State marginal tax rate in percent: ")
		if err != nil {
			return s, err
		}
		s.FederalRate, s.StateRate = fraction(fed), fraction(state)
		return s, nil
	}

	income, err := parseAmount(line)
	for err != nil {
		fmt.Fprintf(p.out, "  %v\n", err)
		if line, err = p.ask("Annual taxable income in USD: "); err != nil {
			return s, err
		}
		income, err = parseAmount(line)
	}
	s.Income = &income

	for s.FilingStatus == "" {
		line, err := p.ask("Filing status [single]: ")
		if err != nil {
			return s, err
		}
		if line == "" {
			s.FilingStatus = model.Single
			break
		}
		status, err := model.ParseFilingStatus(line)
		if err != nil {
			fmt.Fprintf(p.out, "  %v\n", err)
			continue
		}
		s.FilingStatus = status
	}
	return s, nil
}

func (p *prompter) askPercent(question string) (float64, error) {
	for {
		line, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(line, "%"), 64)
		if err == nil {
			if err = tax.ValidateRate(v / 100); err == nil {
				return v, nil
			}
		}
		fmt.Fprintf(p.out, "  enter a percentage between 0 and 100\n")
	}
}

// ask prints the question and returns the trimmed answer. EOF before an
// answer is an error.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.NewReplacer(",", "", "$", "").Replace(s), 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidIncome, s)
	}
	return v, nil
}
