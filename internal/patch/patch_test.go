package patch_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aprovost/studiodesk/internal/patch"
)

var clientSpec = patch.Spec{
	Table:     "client",
	KeyColumn: "client_email",
	Columns: map[string]string{
		"firstName":  "first_name",
		"lastName":   "last_name",
		"phone":      "phone",
		"city":       "city",
		"leadSource": "lead_source",
	},
}

func TestParseObject(t *testing.T) {
	type testCase struct {
		name     string
		body     string
		wantKeys []string
		wantErr  bool
	}

	tests := []testCase{
		{
			name:     "PreservesSubmissionOrder",
			body:     `{"phone":"555-0101","firstName":"Jane","city":"Lisbon"}`,
			wantKeys: []string{"phone", "firstName", "city"},
		},
		{
			name:     "EmptyObject",
			body:     `{}`,
			wantKeys: nil,
		},
		{
			name:    "NotAnObject",
			body:    `[1,2,3]`,
			wantErr: true,
		},
		{
			name:    "Truncated",
			body:    `{"phone":"555`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kvs, err := patch.ParseObject(strings.NewReader(tt.body))

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)

			keys := make([]string, 0, len(kvs))
			for _, kv := range kvs {
				keys = append(keys, kv.Key)
			}

			if tt.wantKeys == nil {
				assert.Empty(t, keys)
				return
			}

			assert.Equal(t, tt.wantKeys, keys)
		})
	}
}

func TestSpec_Map(t *testing.T) {
	type testCase struct {
		name    string
		kvs     []patch.KV
		want    []patch.Field
		wantErr error
	}

	tests := []testCase{
		{
			name: "FiltersIdentityAndUnknown",
			kvs: []patch.KV{
				{Key: "clientEmail", Value: "evil@x.com"},
				{Key: "firstName", Value: "Jane"},
				{Key: "favouriteColour", Value: "teal"},
				{Key: "phone", Value: "555-0101"},
			},
			want: []patch.Field{
				{Column: "first_name", Value: "Jane"},
				{Column: "phone", Value: "555-0101"},
			},
		},
		{
			name:    "OnlyIdentity",
			kvs:     []patch.KV{{Key: "clientEmail", Value: "jane@x.com"}},
			wantErr: patch.ErrNoFields,
		},
		{
			name:    "Empty",
			kvs:     nil,
			wantErr: patch.ErrNoFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := clientSpec.Map(tt.kvs)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpec_Build(t *testing.T) {
	fields := []patch.Field{
		{Column: "first_name", Value: "Jane"},
		{Column: "phone", Value: "555-0101"},
		{Column: "city", Value: "Lisbon"},
	}

	query, args := clientSpec.Build(fields, "jane@x.com")

	assert.Equal(t,
		"UPDATE client SET first_name = $1, phone = $2, city = $3 WHERE client_email = $4",
		query,
	)
	require.Len(t, args, 4)
	assert.Equal(t, "Jane", args[0])
	assert.Equal(t, "jane@x.com", args[3])
}

func TestSpec_Build_SingleField(t *testing.T) {
	query, args := clientSpec.Build([]patch.Field{{Column: "phone", Value: "555"}}, "jane@x.com")

	assert.Equal(t, "UPDATE client SET phone = $1 WHERE client_email = $2", query)
	assert.Equal(t, []any{"555", "jane@x.com"}, args)
}

// End-to-end: N submitted fields yield N+1 placeholders with the key last.
func TestMapThenBuild(t *testing.T) {
	body := `{"lastName":"Doe","clientEmail":"ignored@x.com","leadSource":"referral"}`

	kvs, err := patch.ParseObject(strings.NewReader(body))
	require.NoError(t, err)

	fields, err := clientSpec.Map(kvs)
	require.NoError(t, err)
	require.Len(t, fields, 2)

	query, args := clientSpec.Build(fields, "jane@x.com")

	assert.Equal(t,
		"UPDATE client SET last_name = $1, lead_source = $2 WHERE client_email = $3",
		query,
	)
	assert.Equal(t, []any{"Doe", "referral", "jane@x.com"}, args)
}
