// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package translate

// Prepare converts a Model into RenderData ready for template execution.
// Field types are resolved with the provided TypeResolver; order is kept.
func Prepare(m *Model, resolver TypeResolver) *RenderData {
	data := &RenderData{
		Enums: make([]EnumDef, 0, len(m.Enums)),
		Types: make([]TypeDef, 0, len(m.Records)),
		Extra: make(map[string]any),
	}

	for _, e := range m.Enums {
		data.Enums = append(data.Enums, EnumDef{
			Name:   e.Name,
			Values: append([]string(nil), e.Values...),
		})
	}

	for _, r := range m.Records {
		fields := make([]Field, 0, len(r.Fields))
		for _, fd := range r.Fields {
			f := Field{
				Name: fd.Name,
				Type: ResolveType(fd.Type, resolver),
			}
			resolver.EnrichField(&f)
			fields = append(fields, f)
		}
		data.Types = append(data.Types, TypeDef{
			Name:         r.Name,
			Fields:       fields,
			Participants: append([]string(nil), r.Participants...),
		})
	}

	return data
}
