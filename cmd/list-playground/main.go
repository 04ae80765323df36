// The list-playground command builds a list from JSON values given on the
// command line, applies the operations selected by flags and prints the
// result.
//
//	list-playground --dedupe --reverse 1 2 3 2 '"foo#bar"' '["foo","bar"]'
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	jsoniter "github.com/json-iterator/go"

	"github.com/piijt/data-structures/functional"
	"github.com/piijt/data-structures/linkedlist"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Operations run in the order the fields are declared.
type options struct {
	Prepend []string `long:"prepend" value-name:"<json>" description:"Prepend a value (repeatable)"`
	Insert  []string `long:"insert" value-name:"<index>=<json>" description:"Insert a value at an index (repeatable)"`
	Delete  []string `long:"delete" value-name:"<json>" description:"Delete the first equal value (repeatable)"`
	Concat  string   `long:"concat" value-name:"<json-array>" description:"Append copies of every element of a JSON array"`
	Dedupe  bool     `short:"d" long:"dedupe" description:"Remove duplicate values, keeping the first"`
	Reverse bool     `short:"r" long:"reverse" description:"Reverse the list"`
	Rotate  int      `long:"rotate" value-name:"<n>" description:"Rotate left by n positions"`
	Slice   string   `long:"slice" value-name:"<start>:<end>" description:"Keep only positions [start, end)"`
	Sum     bool     `long:"sum" description:"Also print the sum of the numeric values"`
	JSON    bool     `long:"json" description:"Print the list as a JSON array"`

	Positional struct {
		Values []string `positional-arg-name:"<json-value>"`
	} `positional-args:"yes"`
}

func decode(raw string) (any, error) {
	var v any
	if err := json.UnmarshalFromString(raw, &v); err != nil {
		return nil, fmt.Errorf("cannot parse %q as JSON: %w", raw, err)
	}
	return v, nil
}

func parseRange(raw string) (int, int, error) {
	start, end, ok := strings.Cut(raw, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid range %q, want <start>:<end>", raw)
	}
	a, err := strconv.Atoi(start)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range start %q: %w", start, err)
	}
	b, err := strconv.Atoi(end)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range end %q: %w", end, err)
	}
	return a, b, nil
}

func apply(opts *options, l *linkedlist.LinkedList[any]) (*linkedlist.LinkedList[any], error) {
	for _, raw := range opts.Prepend {
		v, err := decode(raw)
		if err != nil {
			return nil, err
		}
		l.Prepend(v)
	}
	for _, raw := range opts.Insert {
		idx, val, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid insert %q, want <index>=<json>", raw)
		}
		i, err := strconv.Atoi(idx)
		if err != nil {
			return nil, fmt.Errorf("invalid insert index %q: %w", idx, err)
		}
		v, err := decode(val)
		if err != nil {
			return nil, err
		}
		if err := l.InsertAt(v, i); err != nil {
			return nil, err
		}
	}
	for _, raw := range opts.Delete {
		v, err := decode(raw)
		if err != nil {
			return nil, err
		}
		if !l.Delete(v) {
			return nil, fmt.Errorf("cannot delete %s: not in list", raw)
		}
	}
	if opts.Concat != "" {
		var other []any
		if err := json.UnmarshalFromString(opts.Concat, &other); err != nil {
			return nil, fmt.Errorf("cannot parse %q as a JSON array: %w", opts.Concat, err)
		}
		l.Concat(linkedlist.FromSliceWith[any](linkedlist.JSON[any](), other))
	}
	if opts.Dedupe {
		l.RemoveDuplicates()
	}
	if opts.Reverse {
		l.Reverse()
	}
	if opts.Rotate != 0 {
		l.Rotate(opts.Rotate)
	}
	if opts.Slice != "" {
		start, end, err := parseRange(opts.Slice)
		if err != nil {
			return nil, err
		}
		return l.Slice(start, end)
	}
	return l, nil
}

func sum(l *linkedlist.LinkedList[any]) float64 {
	return linkedlist.Fold(l, func(acc float64, v any) float64 {
		if x, ok := v.(float64); ok {
			return functional.Add(acc, x)
		}
		return acc
	}, 0)
}

func run(args []string, stdout io.Writer) error {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return nil
		}
		return err
	}

	l := linkedlist.NewWith[any](linkedlist.JSON[any]())
	for _, raw := range opts.Positional.Values {
		v, err := decode(raw)
		if err != nil {
			return err
		}
		l.Append(v)
	}

	l, err := apply(&opts, l)
	if err != nil {
		return err
	}

	if opts.JSON {
		out, err := json.MarshalToString(l.ToSlice())
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, out)
	} else {
		fmt.Fprintln(stdout, l)
	}
	if opts.Sum {
		fmt.Fprintf(stdout, "sum: %v\n", sum(l))
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
