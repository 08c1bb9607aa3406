package generate

import (
	"encoding/json"
	"testing"

	"fridgechef/internal/core/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRecipesList(t *testing.T) {
	payload := json.RawMessage(`{"recipes":[{"title":"Omelette"},{"title":"Frittata"}]}`)

	outcome := Classify(payload, nil)
	assert.Equal(t, KindSuccess, outcome.Kind)
	require.Len(t, outcome.Recipes, 2)
	assert.Equal(t, "Omelette", outcome.Recipes[0].Title)
}

func TestClassifyEmptyRecipesListIsSuccess(t *testing.T) {
	outcome := Classify(json.RawMessage(`{"recipes":[]}`), nil)
	assert.Equal(t, KindSuccess, outcome.Kind)
	assert.Empty(t, outcome.Recipes)
}

func TestClassifyNullRecipesIsFailure(t *testing.T) {
	outcome := Classify(json.RawMessage(`{"recipes":null}`), nil)
	assert.Equal(t, KindFailure, outcome.Kind)
	assert.Equal(t, MsgNoRecipes, outcome.Message)
}

func TestClassifyNonListRecipesIsFailure(t *testing.T) {
	for _, payload := range []json.RawMessage{
		json.RawMessage(`{"recipes": 5}`),
		json.RawMessage(`{"recipes": "soon"}`),
		json.RawMessage(`{"recipes": {"title": "not a list"}}`),
		json.RawMessage(`{"recipes": true}`),
	} {
		outcome := Classify(payload, nil)
		assert.Equal(t, KindFailure, outcome.Kind, "payload %s", payload)
		assert.Equal(t, MsgNoRecipes, outcome.Message)
	}
}

func TestClassifyQuotaShapeInSuccessBody(t *testing.T) {
	payload := json.RawMessage(`{"error":"limit_reached","checkout_url":"https://pay.example/x","message":"Daily limit reached."}`)

	outcome := Classify(payload, nil)
	assert.Equal(t, KindQuotaExceeded, outcome.Kind)
	assert.Equal(t, "https://pay.example/x", outcome.CheckoutURL)
	assert.Equal(t, "Daily limit reached.", outcome.Message)
}

func TestClassifyQuotaShapeOnErrorValue(t *testing.T) {
	err := &transport.APIError{
		Status:      402,
		Message:     "limit_reached",
		Detail:      "Daily limit reached.",
		CheckoutURL: "https://pay.example/x",
	}

	outcome := Classify(nil, err)
	assert.Equal(t, KindQuotaExceeded, outcome.Kind)
	assert.Equal(t, "https://pay.example/x", outcome.CheckoutURL)
	assert.Equal(t, "Daily limit reached.", outcome.Message)
}

func TestClassifyTransportErrorIsFailure(t *testing.T) {
	outcome := Classify(nil, &transport.APIError{Message: "connection refused"})
	assert.Equal(t, KindFailure, outcome.Kind)
	assert.Equal(t, "connection refused", outcome.Message)
}

func TestClassifyBlankErrorFallsBackToDefaultMessage(t *testing.T) {
	outcome := Classify(nil, &transport.APIError{})
	assert.Equal(t, KindFailure, outcome.Kind)
	assert.Equal(t, MsgNetworkError, outcome.Message)
}

func TestClassifyUnrecognizedShapeIsFailure(t *testing.T) {
	for _, payload := range []json.RawMessage{
		nil,
		json.RawMessage(`{}`),
		json.RawMessage(`{"status":"done"}`),
		json.RawMessage(`"just a string"`),
	} {
		outcome := Classify(payload, nil)
		assert.Equal(t, KindFailure, outcome.Kind, "payload %s", payload)
		assert.Equal(t, MsgNoRecipes, outcome.Message)
	}
}

func TestNewRequestTrimsAndValidates(t *testing.T) {
	req, err := NewRequest("  eggs, cheese  ", " fluffy ", Filters{Vegetarian: true}, 3)
	require.NoError(t, err)
	assert.Equal(t, "eggs, cheese", req.Ingredients)
	assert.Equal(t, "fluffy", req.Notes)
	assert.True(t, req.Filters.Vegetarian)

	_, err = NewRequest("   ", "", Filters{}, 3)
	require.Error(t, err)
}

func TestRequestWireShape(t *testing.T) {
	req, err := NewRequest("eggs", "", Filters{GlutenFree: true, DairyFree: true}, 3)
	require.NoError(t, err)

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"ingredients": "eggs",
		"notes": "",
		"filters": {"vegetarian":false,"vegan":false,"gluten_free":true,"dairy_free":true},
		"limit": 3
	}`, string(data))
}
