package cafe

import (
	"github.com/BruksfildServices01/cafe-api/internal/httperr"
	"github.com/BruksfildServices01/cafe-api/internal/models"
	"github.com/BruksfildServices01/cafe-api/internal/validators"
)

// Fields looks up one submitted input value and reports whether the key
// was sent at all. gin's (*Context).GetPostForm has this shape.
type Fields func(key string) (string, bool)

func FormFields(m map[string]string) Fields {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

var requiredFields = []string{
	"name",
	"map_url",
	"img_url",
	"location",
	"seats",
	"has_toilet",
	"has_wifi",
	"has_sockets",
	"can_take_calls",
}

// ParseFlag treats any non-empty value as true, so "false" and "0" are true.
func ParseFlag(v string) bool {
	return v != ""
}

// buildCafe fills every mutable column of a cafe from submitted input.
func buildCafe(in Fields) (*models.Cafe, error) {
	values := make(map[string]string, len(requiredFields)+1)
	for _, key := range requiredFields {
		v, ok := in(key)
		if !ok {
			return nil, httperr.ErrField(httperr.CodeMissingField, key)
		}
		values[key] = v
	}

	var price *string
	if v, ok := in("coffee_price"); ok {
		values["coffee_price"] = v
		price = &v
	}

	if key, bad := validators.TooLong(values); bad {
		return nil, httperr.ErrField(httperr.CodeInvalidField, key)
	}

	return &models.Cafe{
		Name:         values["name"],
		MapURL:       values["map_url"],
		ImgURL:       values["img_url"],
		Location:     values["location"],
		Seats:        values["seats"],
		HasToilet:    ParseFlag(values["has_toilet"]),
		HasWifi:      ParseFlag(values["has_wifi"]),
		HasSockets:   ParseFlag(values["has_sockets"]),
		CanTakeCalls: ParseFlag(values["can_take_calls"]),
		CoffeePrice:  price,
	}, nil
}
