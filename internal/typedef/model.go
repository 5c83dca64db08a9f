// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package typedef

import (
	"fmt"

	"github.com/cryptoblk/corduroy/internal/introspect"
	"github.com/cryptoblk/corduroy/internal/translate"
)

// Validate checks the document version.
func (d *Document) Validate() error {
	if d.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidDocument, d.Version)
	}
	return nil
}

// Model converts the document into type descriptors.
func (d *Document) Model() (*translate.Model, error) {
	enums := make([]translate.EnumDescriptor, 0, len(d.Enums))
	for _, e := range d.Enums {
		desc, err := introspect.BuildEnum(e.Name, e.Values)
		if err != nil {
			return nil, err
		}
		enums = append(enums, desc)
	}

	records := make([]translate.RecordDescriptor, 0, len(d.Records))
	for _, r := range d.Records {
		members := make([]introspect.Member, len(r.Fields))
		for i, f := range r.Fields {
			members[i] = introspect.Member{Name: f.Name, Type: f.Type}
		}

		var participants []string
		if r.Participants != nil {
			participants = append([]string{}, (*r.Participants)...)
		}

		desc, err := introspect.BuildRecord(r.Name, members, participants)
		if err != nil {
			return nil, err
		}
		records = append(records, desc)
	}

	return introspect.Assemble(enums, records)
}
