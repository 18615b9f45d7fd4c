package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"glossary-extractor/internal/config"
)

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// ask prints question and returns the trimmed answer, or def when the
// answer is blank.
func (p *prompter) ask(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", question, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if answer := strings.TrimSpace(line); answer != "" {
		return answer, nil
	}
	return def, nil
}

// promptConfig fills cfg from answers read from in. Current values of cfg
// are offered as defaults.
func promptConfig(in io.Reader, out io.Writer, cfg *config.Config) error {
	p := &prompter{in: bufio.NewReader(in), out: out}

	var err error
	if cfg.InputPath, err = p.ask("Enter the input file or directory path", cfg.InputPath); err != nil {
		return err
	}

	dicts, err := p.ask("Enter the dictionary file paths (comma separated if multiple)", strings.Join(cfg.DictPaths, ","))
	if err != nil {
		return err
	}
	cfg.DictPaths = config.SplitList(dicts)

	if cfg.OutputFormat, err = p.ask("Enter the output format ("+strings.Join(config.OutputFormats, ", ")+")", cfg.OutputFormat); err != nil {
		return err
	}

	if cfg.OutputFile, err = p.ask("Enter the output file name", cfg.ResolvedOutputFile()); err != nil {
		return err
	}

	if cfg.LogFile, err = p.ask("Enter the log file name (optional)", cfg.LogFile); err != nil {
		return err
	}
	if cfg.Verbosity, err = p.ask("Enter the verbosity level ("+strings.Join(config.VerbosityLevels, ", ")+")", cfg.Verbosity); err != nil {
		return err
	}
	if cfg.Language, err = p.ask("Enter the language ("+strings.Join(config.Languages, ", ")+")", cfg.Language); err != nil {
		return err
	}
	return nil
}
