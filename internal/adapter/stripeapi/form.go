package stripeapi

import (
	"fmt"
	"net/url"
	"sort"

	"stripe-account-reconciler/internal/attrtree"
)

// encodeForm flattens an attribute tree into Stripe's bracket-notation form
// encoding: {"individual": {"dob": {"day": 10}}} becomes
// individual[dob][day]=10. Slices use indexed brackets.
func encodeForm(params attrtree.Tree) url.Values {
	values := url.Values{}
	encodeValue(values, "", map[string]any(params))
	return values
}

func encodeValue(values url.Values, key string, v any) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			encodeValue(values, childKey(key, k), val[k])
		}
	case attrtree.Tree:
		encodeValue(values, key, map[string]any(val))
	case []any:
		for i, item := range val {
			encodeValue(values, fmt.Sprintf("%s[%d]", key, i), item)
		}
	case nil:
		values.Set(key, "")
	case bool:
		if val {
			values.Set(key, "true")
		} else {
			values.Set(key, "false")
		}
	case string:
		values.Set(key, val)
	default:
		values.Set(key, fmt.Sprintf("%v", val))
	}
}

func childKey(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "[" + child + "]"
}
