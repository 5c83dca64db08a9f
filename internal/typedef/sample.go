// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package typedef

// Sample returns the starter document written by "corduroy init".
func Sample() *Document {
	return &Document{
		Version: CurrentVersion,
		Enums: []Enum{
			{Name: "ExampleEnum", Values: []string{"ONE", "TWO", "THREE"}},
		},
		Records: []Record{
			{
				Name: "ExampleState",
				Fields: []Field{
					{Name: "partyA", Type: "Party"},
					{Name: "partyB", Type: "Party"},
					{Name: "name", Type: "kotlin.String"},
					{Name: "xK", Type: "kotlin.Float"},
					{Name: "xL", Type: "kotlin.Double"},
					{Name: "yK", Type: "kotlin.Int"},
					{Name: "vL", Type: "kotlin.Long"},
					{Name: "t", Type: "java.time.Instant"},
					{Name: "b", Type: "kotlin.Boolean"},
					{Name: "bla", Type: "kotlin.Array<kotlin.String>"},
					{Name: "ble", Type: "kotlin.collections.List<kotlin.String>"},
				},
				Participants: Owners("partyA", "partyB"),
			},
		},
	}
}
