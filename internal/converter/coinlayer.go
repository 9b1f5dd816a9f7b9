package converter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const coinLayerURL = "http://api.coinlayer.com/live"

// CoinLayer fetches the BTC/USD rate from the coinlayer API on every
// conversion.
type CoinLayer struct {
	client    *http.Client
	accessKey string
	baseURL   string
}

func NewCoinLayer(accessKey string) *CoinLayer {
	return &CoinLayer{
		client:    &http.Client{Timeout: 10 * time.Second},
		accessKey: accessKey,
		baseURL:   coinLayerURL,
	}
}

func (c *CoinLayer) ToUSD(amount float64) (float64, error) {
	params := url.Values{}
	params.Set("access_key", c.accessKey)
	params.Set("target", "USD")
	params.Set("symbols", "BTC")

	resp, err := c.client.Get(c.baseURL + "?" + params.Encode())
	if err != nil {
		return 0, fmt.Errorf("failed to fetch exchange rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange rate request failed with status %d", resp.StatusCode)
	}

	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode exchange rate response: %w", err)
	}

	rate, ok := body.Rates["BTC"]
	if !ok {
		return 0, fmt.Errorf("exchange rate response missing BTC rate")
	}
	return rate * amount, nil
}
