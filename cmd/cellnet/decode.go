package main

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/command"
	"github.com/creachadair/mds/slice"
	"github.com/danderson/cellnet/enum"
	"github.com/danderson/cellnet/internal/enumgen"
	"github.com/danderson/cellnet/modemmanager"
	"github.com/danderson/cellnet/networkmanager"
)

func allTables() []*enum.Values {
	ret := slices.Concat(modemmanager.Tables, networkmanager.Tables)
	slices.SortFunc(ret, func(a, b *enum.Values) int {
		return cmp.Compare(a.Enum(), b.Enum())
	})
	return ret
}

func findTable(name string) (*enum.Values, error) {
	for _, t := range allTables() {
		if strings.EqualFold(t.Enum(), name) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("unknown enumeration %q, see the enums command for a list", name)
}

func runDecode(env *command.Env, name, value string) error {
	t, err := findTable(name)
	if err != nil {
		return err
	}
	v, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", value, err)
	}
	names, err := enum.Decode(v, t)
	if err != nil {
		return err
	}
	return show(names, func(out *indenter) {
		if len(names) == 0 {
			out.s("(none)")
			return
		}
		out.s(strings.Join(names, "|"))
	})
}

func runEnums(env *command.Env, filter ...string) error {
	args := growTo(filter, 1)
	re, err := regexp.Compile("(?i)" + args[0])
	if err != nil {
		return err
	}
	ts := slices.Collect(slice.Select(allTables(), func(t *enum.Values) bool {
		return re.MatchString(t.Enum())
	}))
	type enumInfo struct {
		Name    string   `yaml:"name"`
		Bitmask bool     `yaml:"bitmask"`
		Values  []string `yaml:"values"`
	}
	infos := make([]enumInfo, 0, len(ts))
	for _, t := range ts {
		var vals []string
		for _, n := range t.All() {
			name, _ := t.Lookup(n)
			vals = append(vals, fmt.Sprintf("%s=%d", name, n))
		}
		infos = append(infos, enumInfo{t.Enum(), t.IsBitmask(), vals})
	}
	return show(infos, func(out *indenter) {
		for _, e := range infos {
			kind := "enum"
			if e.Bitmask {
				kind = "bitmask"
			}
			out.indent(0)
			out.f("%s (%s)", e.Name, kind)
			out.indent(1)
			for _, v := range e.Values {
				out.s(v)
			}
		}
	})
}

func runEnumgen(env *command.Env, in, out string) error {
	bs, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	f, err := enumgen.Parse(bs)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	src, err := enumgen.Generate(f, filepath.Base(in))
	if err != nil {
		return fmt.Errorf("generating %s: %w", out, err)
	}
	return os.WriteFile(out, []byte(src), 0644)
}
