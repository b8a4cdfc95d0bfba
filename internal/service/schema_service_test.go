package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damian-dev1/Ecommerce-Manager/internal/domain"
	"github.com/damian-dev1/Ecommerce-Manager/internal/dto"
	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
)

func newSchemaFixture() (SchemaService, *stubAttributeRepo, *stubCategoryRepo, *stubValueRepo) {
	attrs := newStubAttributeRepo()
	categories := newStubCategoryRepo()
	values := newStubValueRepo()
	return NewSchemaService(attrs, categories, values), attrs, categories, values
}

func defineAttr(t *testing.T, svc SchemaService, code, dataType string) *dto.AttributeResponse {
	t.Helper()
	resp, err := svc.DefineAttribute(context.Background(), dto.DefineAttributeRequest{
		Code: code, Label: code, DataType: dataType,
	})
	require.NoError(t, err)
	return resp
}

func TestDefineAttribute_Success(t *testing.T) {
	svc, _, _, _ := newSchemaFixture()

	resp, err := svc.DefineAttribute(context.Background(), dto.DefineAttributeRequest{
		Code: "screen_size", Label: "Screen Size", DataType: "decimal", IsFacet: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "screen_size", resp.Code)
	assert.Equal(t, "decimal", resp.DataType)
	assert.True(t, resp.IsFacet)
	assert.NotEmpty(t, resp.ID)
}

func TestDefineAttribute_DuplicateCode(t *testing.T) {
	svc, _, _, _ := newSchemaFixture()
	defineAttr(t, svc, "colour", "enum")

	_, err := svc.DefineAttribute(context.Background(), dto.DefineAttributeRequest{
		Code: "colour", Label: "Colour again", DataType: "text",
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDefineAttribute_InvalidDataType(t *testing.T) {
	svc, _, _, _ := newSchemaFixture()

	_, err := svc.DefineAttribute(context.Background(), dto.DefineAttributeRequest{
		Code: "weird", Label: "Weird", DataType: "blob",
	})

	assert.ErrorIs(t, err, domain.ErrTypeMismatch)
}

func TestDefineAttribute_WithGroup(t *testing.T) {
	svc, _, _, _ := newSchemaFixture()
	_, err := svc.DefineGroup(context.Background(), dto.DefineGroupRequest{Code: "display", Label: "Display"})
	require.NoError(t, err)

	group := "display"
	resp, err := svc.DefineAttribute(context.Background(), dto.DefineAttributeRequest{
		Code: "screen_size", Label: "Screen Size", DataType: "decimal", GroupCode: &group,
	})

	assert.NoError(t, err)
	require.NotNil(t, resp.GroupCode)
	assert.Equal(t, "display", *resp.GroupCode)
}

func TestDefineAttribute_UnknownGroup(t *testing.T) {
	svc, _, _, _ := newSchemaFixture()

	group := "nonexistent"
	_, err := svc.DefineAttribute(context.Background(), dto.DefineAttributeRequest{
		Code: "screen_size", Label: "Screen Size", DataType: "decimal", GroupCode: &group,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDefineOption_Success(t *testing.T) {
	svc, _, _, _ := newSchemaFixture()
	defineAttr(t, svc, "colour", "enum")

	resp, err := svc.DefineOption(context.Background(), "colour", dto.DefineOptionRequest{Value: "black", Label: "Black"})

	assert.NoError(t, err)
	assert.Equal(t, "black", resp.Value)

	opts, err := svc.ListOptions(context.Background(), "colour")
	assert.NoError(t, err)
	assert.Len(t, opts, 1)
}

func TestDefineOption_NonEnumAttribute(t *testing.T) {
	svc, _, _, _ := newSchemaFixture()
	defineAttr(t, svc, "weight", "decimal")

	_, err := svc.DefineOption(context.Background(), "weight", dto.DefineOptionRequest{Value: "heavy", Label: "Heavy"})

	assert.ErrorIs(t, err, domain.ErrTypeMismatch)
}

func TestDefineOption_Duplicate(t *testing.T) {
	svc, _, _, _ := newSchemaFixture()
	defineAttr(t, svc, "colour", "enum")
	_, err := svc.DefineOption(context.Background(), "colour", dto.DefineOptionRequest{Value: "black", Label: "Black"})
	require.NoError(t, err)

	_, err = svc.DefineOption(context.Background(), "colour", dto.DefineOptionRequest{Value: "black", Label: "Black again"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDefineOption_UnknownAttribute(t *testing.T) {
	svc, _, _, _ := newSchemaFixture()

	_, err := svc.DefineOption(context.Background(), "nope", dto.DefineOptionRequest{Value: "x", Label: "X"})
	assert.ErrorIs(t, err, domain.ErrUnknownAttribute)
}

func TestAssignToCategory_Idempotent(t *testing.T) {
	svc, attrs, categories, _ := newSchemaFixture()
	defineAttr(t, svc, "colour", "enum")
	cat := &model.Category{Code: "phones", Name: "Phones"}
	require.NoError(t, categories.Create(context.Background(), cat))

	first, err := svc.AssignToCategory(context.Background(), cat.ID, dto.AssignAttributeRequest{
		AttributeCode: "colour", Required: true, SortOrder: 1,
	})
	require.NoError(t, err)
	assert.True(t, first.Required)

	// Same pair again with different flags: refreshes in place, no new row.
	second, err := svc.AssignToCategory(context.Background(), cat.ID, dto.AssignAttributeRequest{
		AttributeCode: "colour", Required: false, SortOrder: 5,
	})
	require.NoError(t, err)
	assert.False(t, second.Required)
	assert.Equal(t, 5, second.SortOrder)
	assert.Len(t, attrs.categoryAs, 1)
}

func TestAssignToCategory_UnknownCategory(t *testing.T) {
	svc, _, _, _ := newSchemaFixture()
	defineAttr(t, svc, "colour", "enum")

	_, err := svc.AssignToCategory(context.Background(), uuid.New(), dto.AssignAttributeRequest{AttributeCode: "colour"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssignToCategory_UnknownAttribute(t *testing.T) {
	svc, _, categories, _ := newSchemaFixture()
	cat := &model.Category{Code: "phones", Name: "Phones"}
	require.NoError(t, categories.Create(context.Background(), cat))

	_, err := svc.AssignToCategory(context.Background(), cat.ID, dto.AssignAttributeRequest{AttributeCode: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnknownAttribute)
}

func TestDeleteAttribute_CascadesOptionsAssignmentsValues(t *testing.T) {
	svc, attrs, categories, values := newSchemaFixture()
	resp := defineAttr(t, svc, "colour", "enum")
	attrID := uuid.MustParse(resp.ID)

	_, err := svc.DefineOption(context.Background(), "colour", dto.DefineOptionRequest{Value: "black", Label: "Black"})
	require.NoError(t, err)

	cat := &model.Category{Code: "phones", Name: "Phones"}
	require.NoError(t, categories.Create(context.Background(), cat))
	_, err = svc.AssignToCategory(context.Background(), cat.ID, dto.AssignAttributeRequest{AttributeCode: "colour", Required: true})
	require.NoError(t, err)

	black := "black"
	require.NoError(t, values.CreateTx(nil, &model.ProductAttributeValue{
		PartNumber: "SKU-1", AttributeID: attrID, ValueText: &black,
	}))

	require.NoError(t, svc.DeleteAttribute(context.Background(), "colour"))

	_, err = svc.ListOptions(context.Background(), "colour")
	assert.ErrorIs(t, err, domain.ErrUnknownAttribute)
	assert.Empty(t, attrs.options)
	assert.Empty(t, attrs.categoryAs)
	assert.Empty(t, values.rows)
}

func TestDeleteAttribute_Unknown(t *testing.T) {
	svc, _, _, _ := newSchemaFixture()

	err := svc.DeleteAttribute(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUnknownAttribute)
}

func TestListAttributes(t *testing.T) {
	svc, _, _, _ := newSchemaFixture()
	defineAttr(t, svc, "colour", "enum")
	defineAttr(t, svc, "weight", "decimal")

	list, err := svc.ListAttributes(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 2)
}
