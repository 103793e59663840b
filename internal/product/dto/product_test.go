package dto

import (
	"testing"

	"github.com/AnthoniusHendriyanto/shop-service/internal/product/domain"
	"github.com/stretchr/testify/assert"
)

func TestCreateProductInput_Validate(t *testing.T) {
	zero := 0.0
	price := 9.5

	tests := []struct {
		name    string
		input   CreateProductInput
		wantErr bool
	}{
		{"valid", CreateProductInput{Name: "Pen", Price: &price}, false},
		{"zero price is allowed", CreateProductInput{Name: "Freebie", Price: &zero}, false},
		{"missing name", CreateProductInput{Price: &price}, true},
		{"missing price", CreateProductInput{Name: "Pen"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateProductInput_Apply(t *testing.T) {
	empty := ""
	stock := 5
	desc := ""

	p := &domain.Product{Name: "Laptop", Description: "fast", Price: 10, Stock: 1}
	UpdateProductInput{Name: &empty, Stock: &stock, Description: &desc}.Apply(p)

	assert.Equal(t, "Laptop", p.Name)
	assert.Equal(t, 5, p.Stock)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, 10.0, p.Price)
}

func TestListQuery_Normalize(t *testing.T) {
	assert.Equal(t, ListQuery{Page: 1, Limit: 10}, ListQuery{}.Normalize())
	assert.Equal(t, ListQuery{Page: 1, Limit: 10}, ListQuery{Page: -3, Limit: -1}.Normalize())
	assert.Equal(t, ListQuery{Page: 2, Limit: 100}, ListQuery{Page: 2, Limit: 5000}.Normalize())
	assert.Equal(t, ListQuery{Page: 3, Limit: 7, Search: "x"}, ListQuery{Page: 3, Limit: 7, Search: "x"}.Normalize())
}
