// Package enumgen generates Go enumeration types and their decoding
// tables from a YAML description.
package enumgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// File describes the enumerations of one Go package.
type File struct {
	Package string `yaml:"package"`
	Enums   []Enum `yaml:"enums"`
}

// Enum describes one enumeration.
type Enum struct {
	// Name is the Go type name.
	Name string `yaml:"name"`
	// Doc is the doc comment for the Go type.
	Doc string `yaml:"doc"`
	// Bitmask is whether values are combined as bit flags.
	Bitmask bool `yaml:"bitmask"`
	// Values are the members, in declaration order.
	Values []Value `yaml:"values"`
}

// Value is an enumeration member.
type Value struct {
	// Name is the symbolic name, as used by the bus service's
	// documentation.
	Name  string `yaml:"name"`
	Value int64  `yaml:"value"`
}

// Parse parses and validates a YAML enumeration description.
func Parse(bs []byte) (*File, error) {
	var ret File
	if err := yaml.Unmarshal(bs, &ret); err != nil {
		return nil, fmt.Errorf("parsing enumerations: %w", err)
	}
	if !token.IsIdentifier(ret.Package) {
		return nil, fmt.Errorf("invalid package name %q", ret.Package)
	}
	seen := map[string]bool{}
	for _, e := range ret.Enums {
		if !token.IsExported(e.Name) {
			return nil, fmt.Errorf("invalid enumeration name %q", e.Name)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("duplicate enumeration %s", e.Name)
		}
		seen[e.Name] = true
		if len(e.Values) == 0 {
			return nil, fmt.Errorf("enumeration %s has no values", e.Name)
		}
		idents := map[string]bool{}
		for _, v := range e.constants() {
			if idents[v] {
				return nil, fmt.Errorf("enumeration %s has duplicate constant %s", e.Name, v)
			}
			idents[v] = true
		}
	}
	return &ret, nil
}

type generator struct {
	out bytes.Buffer
}

func (g *generator) s(s string) {
	g.out.WriteString(s)
}

func (g *generator) f(msg string, args ...any) {
	fmt.Fprintf(&g.out, msg, args...)
}

// Generate returns the formatted Go source for f. Source names the
// description file in the generated header.
func Generate(f *File, source string) (string, error) {
	if f == nil {
		return "", errors.New("no enumerations provided")
	}
	var g generator
	g.f("// Code generated by enumgen from %s. DO NOT EDIT.\n\n", source)
	g.f("package %s\n\n", f.Package)
	g.s("import \"github.com/danderson/cellnet/enum\"\n")
	for _, e := range f.Enums {
		g.Enum(e)
	}

	g.s("\n// Tables lists every enumeration table in this package.\n")
	g.s("var Tables = []*enum.Values{\n")
	for _, e := range f.Enums {
		g.f("%s,\n", e.tableName())
	}
	g.s("}\n")

	ret, err := format.Source(g.out.Bytes())
	if err != nil {
		return g.out.String(), err
	}
	return string(ret), nil
}

func (g *generator) Enum(e Enum) {
	g.s("\n")
	if e.Doc != "" {
		g.f("// %s\n", e.Doc)
	}
	g.f("type %s %s\n\n", e.Name, e.underlying())

	g.s("const (\n")
	for i, c := range e.constants() {
		g.f("%s %s = %s\n", c, e.Name, e.literal(e.Values[i].Value))
	}
	g.s(")\n\n")

	ctor := "New"
	if e.Bitmask {
		ctor = "NewBitmask"
	}
	g.f("// %s names the values of %s.\n", e.tableName(), e.Name)
	g.f("var %s = enum.%s(%q, map[int64]string{\n", e.tableName(), ctor, e.Name)
	seen := map[int64]bool{}
	for _, v := range e.Values {
		if seen[v.Value] {
			// First name wins for aliased values.
			continue
		}
		seen[v.Value] = true
		g.f("%s: %q,\n", e.literal(v.Value), v.Name)
	}
	g.s("})\n\n")

	if e.Bitmask {
		g.f("func (v %s) String() string { return enum.MaskString(v, %s) }\n\n", e.Name, e.tableName())
		g.f("// Flags returns the names of the flags set in v.\n")
		g.f("func (v %s) Flags() ([]string, error) { return enum.Bitmask(v, %s) }\n", e.Name, e.tableName())
	} else {
		g.f("func (v %s) String() string { return enum.String(v, %s) }\n", e.Name, e.tableName())
	}
}

func (e Enum) tableName() string {
	return e.Name + "Names"
}

func (e Enum) underlying() string {
	for _, v := range e.Values {
		if v.Value < 0 {
			return "int32"
		}
	}
	return "uint32"
}

func (e Enum) literal(v int64) string {
	if e.Bitmask && v >= 0 {
		return fmt.Sprintf("0x%x", v)
	}
	return fmt.Sprintf("%d", v)
}

// constants returns the Go constant name of each value: the
// enumeration's type name followed by the part of the symbolic name
// that differs between members.
func (e Enum) constants() []string {
	toks := make([][]string, len(e.Values))
	for i, v := range e.Values {
		toks[i] = strings.Split(v.Name, "_")
	}
	common := commonPrefix(toks)
	ret := make([]string, len(e.Values))
	for i := range toks {
		ret[i] = e.Name + camel(toks[i][common:])
	}
	return ret
}

// commonPrefix returns the number of leading tokens shared by every
// element of toks, leaving at least one token in each.
func commonPrefix(toks [][]string) int {
	n := len(toks[0]) - 1
	for _, t := range toks[1:] {
		n = min(n, len(t)-1)
		for i := range n {
			if t[i] != toks[0][i] {
				n = i
				break
			}
		}
	}
	return max(n, 0)
}

var initialisms = []string{
	"ADSL", "AP", "APN", "AT", "CCMP", "CDMA", "CHAP", "CS", "CSPS",
	"DCS", "DHCP", "DNS", "DRX", "DUN", "EAP", "EDGE", "EGSM", "EPS",
	"ESIM", "EUICC", "EVDO", "GPRS", "GPS", "GSM", "HSDPA", "HSPA",
	"HSUPA", "ICCID", "ID", "IMEI", "IMS", "IMSI", "IP", "LAN", "LTE",
	"MAC", "MACSEC", "MBIM", "MICO", "MMS", "MSCHAP", "NR", "OLPC",
	"OVS", "OWE", "PAP", "PBC", "PCS", "PIN", "POTS", "PPP", "PS",
	"PSK", "PUK", "QCDM", "QMI", "SAE", "SIM", "SMS", "SSID", "SUPL",
	"TKIP", "TM", "TUN", "UE", "UICC", "UMTS", "USB", "UUID", "VETH",
	"VLAN", "VPN", "VRF", "VXLAN", "WAN", "WEP", "WPA", "WPAN", "WPS",
	"WWAN",
}

// camel joins upper snake case tokens into a Go identifier fragment,
// keeping initialisms and tokens with digits upper case.
func camel(toks []string) string {
	var b strings.Builder
	for _, t := range toks {
		switch {
		case t == "":
		case slices.Contains(initialisms, t) || strings.ContainsAny(t, "0123456789"):
			b.WriteString(t)
		default:
			b.WriteString(t[:1] + strings.ToLower(t[1:]))
		}
	}
	return b.String()
}
