package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcronymCode(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Water Club", "WC"},
		{"Penn Labs", "PL"},
		{"  spaced   out  words ", "sow"},
		{"Single", "S"},
		{"", ""},
		{"Éclair Appreciation Society", "ÉAS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AcronymCode(tt.name))
		})
	}
}

func TestClubTagNames(t *testing.T) {
	club := &Club{Tags: []Tag{{TagName: "Undergraduate"}, {TagName: "Health"}}}
	assert.Equal(t, []string{"Undergraduate", "Health"}, club.TagNames())
	assert.Equal(t, []string{}, (&Club{}).TagNames())
}

func TestErrorWriteUnwrap(t *testing.T) {
	inner := assert.AnError
	err := WriteError(inner)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "Write error: "+inner.Error(), err.Error())
}

func TestTagListTracksPresence(t *testing.T) {
	var req PatchClubRequest
	assert.NoError(t, json.Unmarshal([]byte(`{"name": "Water Club"}`), &req))
	assert.False(t, req.Tags.Present)

	req = PatchClubRequest{}
	assert.NoError(t, json.Unmarshal([]byte(`{"tags": []}`), &req))
	assert.True(t, req.Tags.Present)
	assert.Empty(t, req.Tags.Names)

	req = PatchClubRequest{}
	assert.NoError(t, json.Unmarshal([]byte(`{"tags": ["A", "B"]}`), &req))
	assert.Equal(t, NewTagList("A", "B"), req.Tags)
}

func TestTagListRejectsNonList(t *testing.T) {
	for _, body := range []string{`{"tags": null}`, `{"tags": "A"}`, `{"tags": {"A": 1}}`} {
		var req PatchClubRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}

func TestTagListMarshal(t *testing.T) {
	raw, err := json.Marshal(PatchClubRequest{Tags: NewTagList("A")})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"name": null, "code": null, "description": null, "tags": ["A"]}`, string(raw))
}
