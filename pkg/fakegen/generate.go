package fakegen

import (
	"github.com/toyz/fakegen/internal/errors"
)

// Request describes one generation run shared by the CLI and the servers
type Request struct {
	Definition string // definition text
	Filename   string // where the text came from, for error locations
	Count      int    // records to synthesize; below 1 means 1
	Data       bool   // synthesize records
	Source     bool   // emit mock source
	Target     Target // source language, TypeScript when empty
}

// Result holds whatever a Request asked for
type Result struct {
	Definition *InterfaceDefinition
	Data       interface{} // *Record or []*Record
	Source     string
}

// Generate parses req.Definition and runs req against s. A Request asking
// for neither data nor source produces data.
func Generate(s *Synthesizer, req Request) (*Result, error) {
	if req.Definition == "" {
		return nil, errors.InputError("no definition given",
			"Pass a definition such as 'interface User { id: string }'")
	}

	def, err := ParseFile(req.Filename, req.Definition)
	if err != nil {
		return nil, err
	}
	return GenerateFrom(s, def, req)
}

// GenerateFrom runs req against an already parsed definition; the
// definition text of req is ignored
func GenerateFrom(s *Synthesizer, def *InterfaceDefinition, req Request) (*Result, error) {
	res := &Result{Definition: def}
	if req.Data || !req.Source {
		res.Data = s.Synthesize(def, req.Count)
	}
	if req.Source {
		src, err := s.EmitMockSource(def, req.Target)
		if err != nil {
			return nil, errors.WrapGenerateError("mock source for "+def.Name, err)
		}
		res.Source = src
	}
	return res, nil
}
