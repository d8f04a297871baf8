package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingValidate(t *testing.T) {
	listing := Listing{
		Name:   "Cabin",
		Price:  100,
		NumBed: 1,
		People: 2,
	}
	assert.NoError(t, listing.Validate())
}

func TestListingValidateMissingName(t *testing.T) {
	listing := Listing{
		Price:  100,
		People: 2,
	}
	assert.Error(t, listing.Validate())
}

func TestListingValidateBadPrice(t *testing.T) {
	listing := Listing{
		Name:   "Cabin",
		Price:  0,
		People: 2,
	}
	assert.Error(t, listing.Validate())
}

func TestListingValidateBadImg(t *testing.T) {
	listing := Listing{
		Name:   "Cabin",
		Price:  100,
		People: 2,
		Img:    json.RawMessage(`{"not":"a list"}`),
	}
	assert.Error(t, listing.Validate())
}
