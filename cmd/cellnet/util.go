package main

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/danderson/cellnet/modemmanager"
	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"
)

type indenter struct {
	prefix     string
	indentNext bool
}

func (i *indenter) v(v any) {
	fmt.Fprintf(i, "%v\n", v)
}

func (i *indenter) s(msg string) {
	io.WriteString(i, msg+"\n")
}

func (i *indenter) f(msg string, args ...any) {
	fmt.Fprintf(i, msg+"\n", args...)
}

func (i *indenter) Write(bs []byte) (int, error) {
	ret := 0
	for len(bs) > 0 {
		if i.indentNext {
			i.indentNext = false
			_, err := io.WriteString(os.Stdout, i.prefix)
			if err != nil {
				return ret, err
			}
		}

		wr := bs
		idx := bytes.IndexByte(bs, '\n')
		if idx >= 0 {
			i.indentNext = true
			wr, bs = bs[:idx+1], bs[idx+1:]
		} else {
			bs = nil
		}

		n, err := os.Stdout.Write(wr)
		ret += n
		if err != nil {
			return ret, err
		}
	}
	return ret, nil
}

func (i *indenter) indent(n int) {
	i.prefix = strings.Repeat("  ", n)
}

// props writes a property map with one key per line, sorted by key.
func (i *indenter) props(m map[string]any) {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		i.f("%s: %v", k, m[k])
	}
}

// show writes v to stdout in the output format selected by
// --format. text renders the text format.
func show(v any, text func(out *indenter)) error {
	switch globalArgs.Format {
	case "text":
		var out indenter
		text(&out)
		return nil
	case "pretty":
		_, err := pretty.Println(v)
		return err
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", globalArgs.Format)
	}
}

func growTo(s []string, n int) []string {
	for len(s) < n {
		s = append(s, "")
	}
	return s
}

func modemByIndex(mm *modemmanager.Manager, idx string) (*modemmanager.Modem, error) {
	n, err := strconv.Atoi(idx)
	if err != nil {
		return nil, fmt.Errorf("invalid modem index %q: %w", idx, err)
	}
	m, ok := mm.GetByIndex(n)
	if !ok {
		return nil, fmt.Errorf("modem %d not found", n)
	}
	return m, nil
}
