// Package prompt implements the interactive flow used when flags leave
// card inputs unset.
package prompt

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/lipgloss"
)

// ErrInterrupted is returned when the user aborts a prompt (ctrl-c).
var ErrInterrupted = errors.New("interrupted")

// Asker abstracts the prompt backend so the interactive flow can be
// tested without a real terminal.
type Asker interface {
	Input(message string) (string, error)
	Password(message string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

// NewAsker returns the terminal-backed Asker.
func NewAsker() Asker {
	return surveyAsker{}
}

type surveyAsker struct{}

func (surveyAsker) Input(message string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Input{Message: message}, &out)
	return out, normalize(err)
}

func (surveyAsker) Password(message string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Password{Message: message}, &out)
	return out, normalize(err)
}

func (surveyAsker) Confirm(message string, def bool) (bool, error) {
	out := def
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out)
	return out, normalize(err)
}

func normalize(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

// Banner returns the styled header shown when entering interactive mode.
func Banner() string {
	return bannerStyle.Render("WiFi Card Generator")
}

// Card is the full set of inputs needed to generate a card.
type Card struct {
	NetworkName string
	Password    string
	Output      string
	PDF         bool
}

// Complete reports whether every required field was supplied by flags.
func (c Card) Complete() bool {
	return c.NetworkName != "" && c.Password != "" && c.Output != ""
}

// FillMissing asks for each unset field in turn. askPDF controls whether
// the generate-PDF confirmation is asked; callers skip it when --pdf was
// given explicitly.
func FillMissing(a Asker, c *Card, askPDF bool) error {
	if c.NetworkName == "" {
		v, err := a.Input("Network name:")
		if err != nil {
			return err
		}
		c.NetworkName = v
	}
	if c.Password == "" {
		v, err := a.Password("Network password:")
		if err != nil {
			return err
		}
		c.Password = v
	}
	if c.Output == "" {
		v, err := a.Input("Output file name (without extension):")
		if err != nil {
			return err
		}
		c.Output = v
	}
	if askPDF {
		v, err := a.Confirm("Generate PDF?", c.PDF)
		if err != nil {
			return err
		}
		c.PDF = v
	}
	return nil
}
