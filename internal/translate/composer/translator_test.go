// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package composer

import (
	"strings"
	"testing"

	"github.com/cryptoblk/corduroy/internal/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const partyBlock = "participant Party identified by id {\n\to String id\n}\n"

func dealRecord() translate.RecordDescriptor {
	return translate.RecordDescriptor{
		Name: "Deal",
		Fields: []translate.FieldDescriptor{
			{Name: "partyA", Type: translate.TypeRef{Name: "Party"}},
			{Name: "partyB", Type: translate.TypeRef{Name: "Party"}},
			{Name: "amount", Type: translate.TypeRef{Name: "Long"}},
			{Name: "name", Type: translate.TypeRef{Name: "String"}},
		},
		Participants: []string{"partyA", "partyB"},
	}
}

func TestTranslate_ParticipantBlockOnly(t *testing.T) {
	output, err := (&Translator{}).Translate(&translate.Model{})
	require.NoError(t, err)
	assert.Equal(t, partyBlock, string(output))
}

func TestTranslate_Enum(t *testing.T) {
	m := &translate.Model{
		Enums: []translate.EnumDescriptor{
			{Name: "Status", Values: []string{"ACTIVE", "CLOSED"}},
		},
	}

	output, err := (&Translator{}).Translate(m)
	require.NoError(t, err)

	want := partyBlock + "enum Status {\n\to ACTIVE,\n\to CLOSED\n}\n"
	assert.Equal(t, want, string(output))
}

func TestTranslate_Record(t *testing.T) {
	m := &translate.Model{Records: []translate.RecordDescriptor{dealRecord()}}

	output, err := (&Translator{}).Translate(m)
	require.NoError(t, err)

	want := partyBlock +
		"asset Deal identified by id {\n" +
		"\to String id\n" +
		"\t--> Party partyA\n" +
		"\t--> Party partyB\n" +
		"\to Long amount\n" +
		"\to String name\n" +
		"}\n"
	assert.Equal(t, want, string(output))
}

func TestTranslate_SyntheticIDPrecedesFields(t *testing.T) {
	m := &translate.Model{Records: []translate.RecordDescriptor{dealRecord()}}

	output, err := (&Translator{}).Translate(m)
	require.NoError(t, err)

	body := strings.TrimPrefix(string(output), partyBlock)
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	require.Len(t, lines, len(dealRecord().Fields)+3)
	assert.Equal(t, "asset Deal identified by id {", lines[0])
	assert.Equal(t, "\to String id", lines[1])
	assert.Equal(t, "}", lines[len(lines)-1])
	assert.Equal(t, 1, strings.Count(body, " id\n"))
}

func TestTranslate_TypeMapping(t *testing.T) {
	m := &translate.Model{
		Enums: []translate.EnumDescriptor{
			{Name: "ExampleEnum", Values: []string{"ONE", "TWO", "THREE"}},
		},
		Records: []translate.RecordDescriptor{
			{
				Name: "ExampleState",
				Fields: []translate.FieldDescriptor{
					{Name: "xK", Type: translate.TypeRef{Name: "Float"}},
					{Name: "xL", Type: translate.TypeRef{Name: "Double"}},
					{Name: "yK", Type: translate.TypeRef{Name: "Int"}},
					{Name: "t", Type: translate.TypeRef{Name: "Instant"}},
					{Name: "d", Type: translate.TypeRef{Name: "LocalDate"}},
					{Name: "dt", Type: translate.TypeRef{Name: "LocalDateTime"}},
					{Name: "b", Type: translate.TypeRef{Name: "Boolean"}},
					{Name: "bla", Type: translate.TypeRef{Name: "Array", Arg: "String"}},
					{Name: "ble", Type: translate.TypeRef{Name: "List", Arg: "String"}},
					{Name: "counts", Type: translate.TypeRef{Name: "List", Arg: "Int"}},
					{Name: "kind", Type: translate.TypeRef{Name: "ExampleEnum"}},
					{Name: "kinds", Type: translate.TypeRef{Name: "List", Arg: "ExampleEnum"}},
					{Name: "owners", Type: translate.TypeRef{Name: "List", Arg: "Party"}},
					{Name: "amount", Type: translate.TypeRef{Name: "BigDecimal"}},
				},
				Participants: []string{"partyA"},
			},
		},
	}

	output, err := (&Translator{}).Translate(m)
	require.NoError(t, err)

	result := string(output)
	for _, line := range []string{
		"\to Double xK\n",
		"\to Double xL\n",
		"\to Integer yK\n",
		"\to DateTime t\n",
		"\to DateTime d\n",
		"\to DateTime dt\n",
		"\to Boolean b\n",
		"\to String[] bla\n",
		"\to String[] ble\n",
		"\to Integer[] counts\n",
		"\to ExampleEnum kind\n",
		"\to ExampleEnum[] kinds\n",
		"\t--> Party[] owners\n",
		"\t--> BigDecimal amount\n",
	} {
		assert.Contains(t, result, line)
	}
	assert.Contains(t, result, "enum ExampleEnum {\n\to ONE,\n\to TWO,\n\to THREE\n}\n")
}

func TestTranslate_RecordWithoutFields(t *testing.T) {
	m := &translate.Model{
		Records: []translate.RecordDescriptor{{Name: "Empty", Participants: []string{}}},
	}

	output, err := (&Translator{}).Translate(m)
	require.NoError(t, err)

	assert.Equal(t, partyBlock+"asset Empty identified by id {\n\to String id\n}\n", string(output))
}

func TestTranslate_Ordering(t *testing.T) {
	m := &translate.Model{
		Enums: []translate.EnumDescriptor{
			{Name: "B", Values: []string{"X"}},
			{Name: "A", Values: []string{"Y"}},
		},
		Records: []translate.RecordDescriptor{
			{Name: "Second", Participants: []string{}},
			dealRecord(),
		},
	}

	output, err := (&Translator{}).Translate(m)
	require.NoError(t, err)

	result := string(output)
	positions := []int{
		strings.Index(result, "participant Party"),
		strings.Index(result, "enum B {"),
		strings.Index(result, "enum A {"),
		strings.Index(result, "asset Second "),
		strings.Index(result, "asset Deal "),
	}
	for i := 1; i < len(positions); i++ {
		assert.Less(t, positions[i-1], positions[i])
	}
	assert.Equal(t, 1, strings.Count(result, "participant Party"))
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, ".cto", (&Translator{}).FileExtension())
}
