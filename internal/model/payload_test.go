package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/deppfellow/grampanchayat/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSizeUnmarshal(t *testing.T) {
	var in AnnouncementInput

	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","fileSize":"12.35 KB"}`), &in))
	assert.Equal(t, FileSize("12.35 KB"), *in.FileSize)

	in = AnnouncementInput{}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","fileSize":2048}`), &in))
	assert.Equal(t, FileSize("2.00 KB"), *in.FileSize)

	in = AnnouncementInput{}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","fileSize":null}`), &in))
	assert.Nil(t, in.FileSize)

	assert.Error(t, json.Unmarshal([]byte(`{"fileSize":true}`), &in))
}

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{`"2024-01-15"`, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{`"2024-01-15T10:30:00Z"`, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{`"2024-01-15T10:30"`, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &d), tt.raw)
		assert.True(t, tt.want.Equal(d.Time), tt.raw)
	}

	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15/01/2024"`), &d))
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}

func TestCreateUserPayloadValidate(t *testing.T) {
	ok := &CreateUserPayload{Email: "e@example.org", Password: "secret1", Role: RoleEditor, Permissions: []string{"task1", "*"}}
	assert.NoError(t, ok.Validate())

	bad := &CreateUserPayload{Email: "nope", Password: "123", Role: "owner", Permissions: []string{"task10"}}
	fields := fieldsOf(t, bad.Validate())
	assert.ElementsMatch(t, []string{"Email", "Password", "Role", "Permissions[0]"}, fields)
}

func TestSaveRepresentativesPayloadValidate(t *testing.T) {
	assert.NoError(t, (&SaveRepresentativesPayload{Representatives: []RepresentativeInput{}}).Validate())
	assert.Error(t, (&SaveRepresentativesPayload{}).Validate())

	p := &SaveRepresentativesPayload{Representatives: []RepresentativeInput{{Name: "A", Position: "Sarpanch"}}}
	assert.Equal(t, []string{"Mobile"}, fieldsOf(t, p.Validate()))

	p = &SaveRepresentativesPayload{Representatives: []RepresentativeInput{
		{Name: "A", Mobile: "1", Position: "Sarpanch", Fixed: true},
		{Name: "B", Mobile: "2", Position: "Gram Sevak", Fixed: true},
		{Name: "C", Mobile: "3", Position: "Sarpanch", Fixed: true},
	}}
	var dup validation.CustomValidationErrors
	require.ErrorAs(t, p.Validate(), &dup)
	require.Len(t, dup, 1)
	assert.Equal(t, "representatives[2].position", dup[0].Field)
}

func TestUpdateHeroOrderPayloadValidate(t *testing.T) {
	p := &UpdateHeroOrderPayload{Order: 4}
	assert.ElementsMatch(t, []string{"ID", "Order"}, fieldsOf(t, p.Validate()))
}

func TestUploadImagePayloadValidate(t *testing.T) {
	assert.NoError(t, (&UploadImagePayload{}).Validate())
	assert.NoError(t, (&UploadImagePayload{Category: "events"}).Validate())
	assert.Error(t, (&UploadImagePayload{Category: "selfies"}).Validate())
}

func TestUploadPayloadRejectsNestedCategory(t *testing.T) {
	assert.NoError(t, (&UploadPayload{Category: "documents"}).Validate())
	assert.Error(t, (&UploadPayload{Category: "../secrets"}).Validate())
}

func TestUpdateUserPayloadPermissions(t *testing.T) {
	id := uuid.New()
	assert.NoError(t, (&UpdateUserPayload{ID: id, Permissions: []string{"task9"}}).Validate())

	bad := &UpdateUserPayload{ID: id, Permissions: []string{"task1", "task10"}}
	assert.Equal(t, []string{"Permissions[1]"}, fieldsOf(t, bad.Validate()))
}

func TestListImagesQueryCategory(t *testing.T) {
	assert.NoError(t, (&ListImagesQuery{}).Validate())
	assert.NoError(t, (&ListImagesQuery{Category: "gallery"}).Validate())
	assert.Equal(t, []string{"Category"}, fieldsOf(t, (&ListImagesQuery{Category: "selfies"}).Validate()))
}
