package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TonnyWong1052/picker/internal/config"
	apperrors "github.com/TonnyWong1052/picker/internal/errors"
	"github.com/TonnyWong1052/picker/internal/logging"
	"github.com/TonnyWong1052/picker/internal/selector"
)

var (
	flagFromFile string
	flagOpenURL  string
	flagOpenKey  string
	flagNoHelp   bool
	flagClear    bool
)

var oneCmd = &cobra.Command{
	Use:   "one [items...]",
	Short: "Choose a single item",
	Long: `Show the items and print the one chosen with enter.

Keys: up/k and down/j move, enter selects, ctrl+c cancels.
Bindings can be changed with 'picker config bind one <key> <action>'.`,
	RunE: runOne,
}

var manyCmd = &cobra.Command{
	Use:   "many [items...]",
	Short: "Choose any number of items",
	Long: `Show the items, toggle them with space and print the chosen ones,
one per line and in list order, when enter is pressed.

Keys: up/k and down/j move, space toggles, enter finishes, ctrl+c cancels.`,
	RunE: runMany,
}

func init() {
	for _, c := range []*cobra.Command{oneCmd, manyCmd} {
		c.Flags().StringVarP(&flagFromFile, "from-file", "f", "", "read items from a file, one per line")
		c.Flags().StringVar(&flagOpenURL, "open-url", "", "bind a key that opens this URL for the current value; {} is replaced by the value")
		c.Flags().StringVar(&flagOpenKey, "open-key", "o", "key used with --open-url")
		c.Flags().BoolVar(&flagNoHelp, "no-help", false, "hide the key binding summary")
		c.Flags().BoolVar(&flagClear, "clear", false, "erase the list when done")
	}
}

func runOne(cmd *cobra.Command, args []string) error {
	items, err := loadItems(args, flagFromFile)
	if err != nil {
		return err
	}

	km := selector.DefaultSingleKeymap[string]()
	if err := config.ApplySingle(km, cfg.SingleKeys); err != nil {
		return err
	}
	if flagOpenURL != "" {
		k, err := selector.ParseKey(flagOpenKey)
		if err != nil {
			return err
		}
		km.Insert(k, selector.SingleFunc(func(value string) {
			openURLs(flagOpenURL, []string{value})
		}).WithHelp("open"))
	}

	value, err := selector.SelectOne(selector.NewStdinInput(), items, km, selectorOptions()...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runMany(cmd *cobra.Command, args []string) error {
	items, err := loadItems(args, flagFromFile)
	if err != nil {
		return err
	}

	km := selector.DefaultMultiKeymap[string]()
	if err := config.ApplyMulti(km, cfg.MultiKeys); err != nil {
		return err
	}
	if flagOpenURL != "" {
		k, err := selector.ParseKey(flagOpenKey)
		if err != nil {
			return err
		}
		km.Insert(k, selector.MultiFunc(func(values []string) {
			openURLs(flagOpenURL, values)
		}).WithHelp("open"))
	}

	values, err := selector.SelectMany(selector.NewStdinInput(), items, km, selectorOptions()...)
	if err != nil {
		return err
	}
	for _, v := range values {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

func selectorOptions() []selector.Option {
	styles := selector.DefaultStyles()
	styles.CursorMarker = cfg.Display.CursorMarker
	return []selector.Option{
		selector.WithStyles(styles),
		selector.WithHelp(cfg.Display.ShowHelp && !flagNoHelp),
		selector.WithClearOnExit(cfg.Display.ClearOnExit || flagClear),
		selector.WithLogger(logging.WithComponent("selector")),
	}
}

// loadItems returns args as items, or the lines of path when it is set.
// Stdin is reserved for key presses, so it cannot be the item source.
func loadItems(args []string, path string) ([]selector.Item[string], error) {
	if path == "" {
		return selector.ItemsFromStrings(args...), nil
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("items given both as arguments and with --from-file")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.WrapError(err, apperrors.ErrIOFailure, "cannot read item file").
			WithContext("path", path)
	}
	defer f.Close()

	labels, err := readLines(f)
	if err != nil {
		return nil, apperrors.WrapError(err, apperrors.ErrIOFailure, "cannot read item file").
			WithContext("path", path)
	}
	return selector.ItemsFromStrings(labels...), nil
}

// readLines returns the non-blank lines of r without line endings.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
