package synth

import (
	"strings"
	"time"

	"github.com/toyz/fakegen/internal/models"
)

// Generator produces sample values for a leaf in every output form
type Generator struct {
	Name       string
	TypeScript string // faker.js expression
	TSType     string // TypeScript type of the faker.js expression
	Go         string // gofakeit expression over a *gofakeit.Faker named f
	GoType     string // Go type of the gofakeit expression
	GoTime     bool   // Go expression or type refers to package time
	Value      func(s *Source) interface{}
}

// Rule selects a generator. Match receives the lower-cased field name and
// declared type; Gen receives the lower-cased declared type.
type Rule struct {
	Name  string
	Match func(field, declaredType string) bool
	Gen   func(declaredType string) Generator
}

// RuleSet is an ordered rule table. Name rules are tried before type rules,
// the first match wins, and Default is used when nothing matches.
type RuleSet struct {
	NameRules []Rule
	TypeRules []Rule
	Default   Generator
}

// Resolve picks the generator for a leaf node
func (rs *RuleSet) Resolve(node *models.PropertyNode) Generator {
	field := strings.ToLower(node.Name)
	declared := strings.ToLower(strings.TrimSpace(node.DeclaredType))

	for _, rules := range [][]Rule{rs.NameRules, rs.TypeRules} {
		for _, rule := range rules {
			if rule.Match(field, declared) {
				return rule.Gen(declared)
			}
		}
	}
	return rs.Default
}

// Rule returns the name or type rule called name
func (rs *RuleSet) Rule(name string) (Rule, bool) {
	for _, rules := range [][]Rule{rs.NameRules, rs.TypeRules} {
		for _, rule := range rules {
			if rule.Name == name {
				return rule, true
			}
		}
	}
	return Rule{}, false
}

var (
	genSample = Generator{
		Name:       "sample",
		TypeScript: "faker.string.sample()",
		TSType:     "string",
		Go:         `"Sample " + f.LetterN(6)`,
		GoType:     "string",
		Value:      func(s *Source) interface{} { return "Sample " + s.LetterN(6) },
	}
	genNumber = Generator{
		Name:       "number",
		TypeScript: "faker.number.int({ min: 1, max: 1000 })",
		TSType:     "number",
		Go:         "f.IntRange(1, 1000)",
		GoType:     "int",
		Value:      func(s *Source) interface{} { return s.IntRange(1, 1000) },
	}
	genBoolean = Generator{
		Name:       "boolean",
		TypeScript: "faker.datatype.boolean()",
		TSType:     "boolean",
		Go:         "f.Bool()",
		GoType:     "bool",
		Value:      func(s *Source) interface{} { return s.Bool() },
	}
	genEmail   = text("email", "faker.internet.email()", "f.Email()", func(s *Source) string { return s.Email() })
	genURL     = text("url", "faker.internet.url()", "f.URL()", func(s *Source) string { return s.URL() })
	genPhone   = text("phone", "faker.phone.number()", "f.Phone()", func(s *Source) string { return s.Phone() })
	genName    = text("name", "faker.person.fullName()", "f.Name()", func(s *Source) string { return s.Name() })
	genAddress = text("address", "faker.location.streetAddress()", "f.Street()", func(s *Source) string { return s.Street() })
	genCity    = text("city", "faker.location.city()", "f.City()", func(s *Source) string { return s.City() })
	genCountry = text("country", "faker.location.country()", "f.Country()", func(s *Source) string { return s.Country() })
	genUUID    = text("uuid", "faker.string.uuid()", "f.UUID()", func(s *Source) string { return s.UUID() })
)

func text(name, ts, goExpr string, value func(s *Source) string) Generator {
	return Generator{
		Name:       name,
		TypeScript: ts,
		TSType:     "string",
		Go:         goExpr,
		GoType:     "string",
		Value:      func(s *Source) interface{} { return value(s) },
	}
}

// moment is a point in time that can be rendered as a date, epoch millis or RFC 3339 text
type moment struct {
	name string
	ts   string // faker.js Date expression
	goAt string // Go time.Time expression
	at   func(s *Source) time.Time
}

var (
	recentMoment = moment{
		name: "recent",
		ts:   "faker.date.recent()",
		goAt: "f.DateRange(time.Now().AddDate(0, 0, -1), time.Now())",
		at: func(s *Source) time.Time {
			now := s.Now()
			return s.DateRange(now.AddDate(0, 0, -1), now)
		},
	}
	pastMoment = moment{
		name: "past",
		ts:   "faker.date.past()",
		goAt: "f.DateRange(time.Now().AddDate(-1, 0, 0), time.Now())",
		at: func(s *Source) time.Time {
			now := s.Now()
			return s.DateRange(now.AddDate(-1, 0, 0), now)
		},
	}
	birthdateMoment = moment{
		name: "birthdate",
		ts:   "faker.date.birthdate({ min: 18, max: 80, mode: 'age' })",
		goAt: "f.DateRange(time.Now().AddDate(-80, 0, 0), time.Now().AddDate(-18, 0, 0))",
		at: func(s *Source) time.Time {
			now := s.Now()
			return s.DateRange(now.AddDate(-80, 0, 0), now.AddDate(-18, 0, 0))
		},
	}
)

// generator renders the moment in the representation the declared type asks for
func (m moment) generator(declared string) Generator {
	switch declared {
	case "number":
		return Generator{
			Name:       m.name + ".epoch",
			TypeScript: m.ts + ".getTime()",
			TSType:     "number",
			Go:         m.goAt + ".UnixMilli()",
			GoType:     "int64",
			GoTime:     true,
			Value:      func(s *Source) interface{} { return m.at(s).UnixMilli() },
		}
	case "string":
		return Generator{
			Name:       m.name + ".iso",
			TypeScript: m.ts + ".toISOString()",
			TSType:     "string",
			Go:         m.goAt + ".UTC().Format(time.RFC3339)",
			GoType:     "string",
			GoTime:     true,
			Value:      func(s *Source) interface{} { return m.at(s).UTC().Format(time.RFC3339) },
		}
	default:
		return Generator{
			Name:       m.name,
			TypeScript: m.ts,
			TSType:     "Date",
			Go:         m.goAt,
			GoType:     "time.Time",
			GoTime:     true,
			Value:      func(s *Source) interface{} { return m.at(s) },
		}
	}
}

// nonTextual types keep their own generator even when the field name suggests text
var nonTextual = map[string]bool{
	"number":  true,
	"bigint":  true,
	"boolean": true,
	"date":    true,
}

func fixed(g Generator) func(string) Generator {
	return func(string) Generator { return g }
}

func fieldContains(keys ...string) func(field, declared string) bool {
	return func(field, _ string) bool {
		for _, key := range keys {
			if strings.Contains(field, key) {
				return true
			}
		}
		return false
	}
}

// temporalRule matches field names and renders a moment; boolean fields are left alone
func temporalRule(name string, m moment, keys ...string) Rule {
	contains := fieldContains(keys...)
	return Rule{
		Name:  name,
		Match: func(field, declared string) bool { return declared != "boolean" && contains(field, declared) },
		Gen:   m.generator,
	}
}

// textRule matches field names whose declared type can hold text
func textRule(name string, g Generator, keys ...string) Rule {
	contains := fieldContains(keys...)
	return Rule{
		Name:  name,
		Match: func(field, declared string) bool { return !nonTextual[declared] && contains(field, declared) },
		Gen:   fixed(g),
	}
}

// typeRule matches a substring of the declared type
func typeRule(key string, gen func(string) Generator) Rule {
	return Rule{
		Name:  "type:" + key,
		Match: func(_, declared string) bool { return strings.Contains(declared, key) },
		Gen:   gen,
	}
}

// DefaultRules returns the built-in rule table. Specific field names come before
// general ones so "timestamp" is not claimed by "time".
func DefaultRules() *RuleSet {
	return &RuleSet{
		NameRules: []Rule{
			temporalRule("timestamp", recentMoment, "timestamp"),
			temporalRule("datetime", recentMoment, "datetime"),
			temporalRule("time", recentMoment, "time"),
			temporalRule("created", pastMoment, "created"),
			temporalRule("updated", recentMoment, "updated"),
			temporalRule("birthday", birthdateMoment, "birthday", "birth"),
			textRule("id", genUUID, "id"),
			textRule("email", genEmail, "email"),
			textRule("name", genName, "name"),
			textRule("phone", genPhone, "phone"),
			textRule("url", genURL, "url"),
			textRule("address", genAddress, "address"),
			textRule("city", genCity, "city"),
			textRule("country", genCountry, "country"),
		},
		TypeRules: []Rule{
			typeRule("string", fixed(genSample)),
			typeRule("number", fixed(genNumber)),
			typeRule("boolean", fixed(genBoolean)),
			typeRule("date", recentMoment.generator),
			typeRule("email", fixed(genEmail)),
			typeRule("url", fixed(genURL)),
			typeRule("phone", fixed(genPhone)),
			typeRule("name", fixed(genName)),
			typeRule("address", fixed(genAddress)),
			typeRule("city", fixed(genCity)),
			typeRule("country", fixed(genCountry)),
			typeRule("uuid", fixed(genUUID)),
			typeRule("id", fixed(genUUID)),
		},
		Default: genSample,
	}
}
