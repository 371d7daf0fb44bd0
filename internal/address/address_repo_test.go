package address_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-jewel-storefront/internal/address"
	"go-jewel-storefront/internal/apiclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/addresses", r.URL.Path)
		assert.Equal(t, "C1", r.URL.Query().Get("custId"))
		_, _ = io.WriteString(w, `{"success":true,"data":[
			{"AddressId":7,"Name":"Asha","Phone":9876543210,"AddressLine":"12 MG Road","City":"Pune","Pincode":"411001","IsDefault":1},
			{"Id":"8","Address":"Office","IsDefault":false}
		]}`)
	}))
	defer srv.Close()

	repo := address.NewRepository(apiclient.New(apiclient.Options{BaseURL: srv.URL}))
	list, err := repo.List(context.Background(), "C1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "7", list[0].ID)
	assert.Equal(t, "9876543210", list[0].Phone)
	assert.Equal(t, "12 MG Road", list[0].Address)
	assert.Equal(t, "411001", list[0].PinCode)
	assert.True(t, list[0].IsDefault)
	assert.False(t, list[1].IsDefault)
}

func TestRepository_Update_SendsPascalCase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/addresses/8", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "C1", body["CustId"])
		assert.Equal(t, true, body["IsDefault"])
		assert.Equal(t, "411001", body["PinCode"])

		_, _ = io.WriteString(w, `{"success":true}`)
	}))
	defer srv.Close()

	repo := address.NewRepository(apiclient.New(apiclient.Options{BaseURL: srv.URL}))
	row, err := repo.Update(context.Background(), "C1", "8", address.Request{PinCode: "411001", IsDefault: true})
	require.NoError(t, err)
	assert.Nil(t, row)
}
