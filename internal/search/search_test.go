package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aprovost/studiodesk/internal/search"
)

func TestSearch_EmptyQuerySkipsStorage(t *testing.T) {
	// A nil repository would panic if the service touched it.
	svc := search.NewService(nil)

	res, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, res.Total())
}

func TestResult_Total(t *testing.T) {
	res := &search.Result{
		Clients:  []search.Hit{{ID: "a@x.com"}, {ID: "b@x.com"}},
		Invoices: []search.Hit{{ID: "1001"}},
	}

	assert.Equal(t, 3, res.Total())
}
