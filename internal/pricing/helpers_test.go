package pricing_test

import "encoding/json"

func jsonInto(body string, out any) error {
	return json.Unmarshal([]byte(body), out)
}
