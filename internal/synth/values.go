package synth

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/toyz/fakegen/internal/models"
)

// Record is one synthesized instance. Keys keep declaration order when
// encoded to JSON or YAML.
type Record = orderedmap.OrderedMap[string, interface{}]

// valueEmitter produces live values
type valueEmitter struct {
	src *Source
}

func (v valueEmitter) Array(_ *models.PropertyNode, element func() interface{}) interface{} {
	out := make([]interface{}, v.src.IntRange(1, 5))
	for i := range out {
		out[i] = element()
	}
	return out
}

func (v valueEmitter) Union(_ *models.PropertyNode, variants []func() interface{}) interface{} {
	if len(variants) == 0 {
		return nil
	}
	return variants[v.src.Pick(len(variants))]()
}

func (v valueEmitter) Object(_ *models.PropertyNode, fields []Field[interface{}]) interface{} {
	record := orderedmap.New[string, interface{}]()
	for _, f := range fields {
		record.Set(f.Node.Name, f.Build())
	}
	return record
}

func (v valueEmitter) Enum(_ *models.PropertyNode, values []string) interface{} {
	if len(values) == 0 {
		return ""
	}
	return values[v.src.Pick(len(values))]
}

func (v valueEmitter) Literal(node *models.PropertyNode) interface{} {
	return node.LiteralValue()
}

func (v valueEmitter) Leaf(_ *models.PropertyNode, gen Generator) interface{} {
	return gen.Value(v.src)
}
