package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/iyhunko/product-showcase/internal/model"
	"github.com/iyhunko/product-showcase/internal/presenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowcase_ImageFallback_Integration(t *testing.T) {
	images := SetupImageHost(t)
	products := []model.Product{
		{ID: 1, Name: "Working", Category: "Audio", Price: 29990, InStock: true, Rating: 5, Image: images.URL("ok.jpg")},
		{ID: 2, Name: "Broken", Category: "Laptops", Price: 99900, InStock: false, Rating: 5, Image: images.URL("broken.jpg")},
	}
	baseURL := SetupShowcase(t, products)

	t.Run("cards endpoint reports the resolved image sources", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/cards")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Cards []struct {
				Name  string `json:"name"`
				Image struct {
					Src     string `json:"src"`
					Primary string `json:"primary"`
					State   string `json:"state"`
				} `json:"image"`
			} `json:"cards"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Cards, 2)

		assert.Equal(t, "Working", body.Cards[0].Name)
		assert.Equal(t, images.URL("ok.jpg"), body.Cards[0].Image.Src)
		assert.Equal(t, "primary", body.Cards[0].Image.State)

		assert.Equal(t, "Broken", body.Cards[1].Name)
		assert.Equal(t, presenter.FallbackImageURL, body.Cards[1].Image.Src)
		assert.Equal(t, images.URL("broken.jpg"), body.Cards[1].Image.Primary)
		assert.Equal(t, "fallback", body.Cards[1].Image.State)
	})

	t.Run("html page swaps the broken image", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		html := string(data)

		assert.Contains(t, html, `src="`+images.URL("ok.jpg")+`"`)
		assert.NotContains(t, html, `src="`+images.URL("broken.jpg")+`"`)
		assert.Equal(t, 2, strings.Count(html, "data-product-id="))
	})
}

func TestShowcase_CORS_Integration(t *testing.T) {
	baseURL := SetupShowcase(t, nil)

	req, err := http.NewRequest(http.MethodOptions, baseURL+"/cards", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
