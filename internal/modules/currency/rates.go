package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

const (
	defaultCacheTTL     = time.Hour
	defaultFetchTimeout = 5 * time.Second
)

// ratesResponse is the shape the public exchange-rate API returns.
type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Provider fetches the USD-based rate table from an external API and caches
// it in process. Any fetch or decode failure degrades to the USD-only
// fallback table; the provider never returns an error to callers.
type Provider struct {
	apiURL string
	client *http.Client
	ttl    time.Duration
	now    func() time.Time

	mu        sync.RWMutex
	cached    RateTable
	fetchedAt time.Time
}

func NewProvider(apiURL string) *Provider {
	return &Provider{
		apiURL: apiURL,
		client: &http.Client{Timeout: defaultFetchTimeout},
		ttl:    defaultCacheTTL,
		now:    time.Now,
	}
}

// Rates returns the current rate table. The cached table is reused until it
// expires; a failed refresh falls back to USD-only rather than erroring.
func (p *Provider) Rates(ctx context.Context) RateTable {
	p.mu.RLock()
	if p.cached != nil && p.now().Sub(p.fetchedAt) < p.ttl {
		table := p.cached
		p.mu.RUnlock()
		return table
	}
	p.mu.RUnlock()

	table, err := p.fetch(ctx)
	if err != nil {
		log.Printf("level=warn msg=exchange rate fetch failed, falling back to USD err=%v", err)
		return Fallback()
	}

	p.mu.Lock()
	p.cached = table
	p.fetchedAt = p.now()
	p.mu.Unlock()

	return table
}

func (p *Provider) fetch(ctx context.Context) (RateTable, error) {
	if p.apiURL == "" {
		return nil, fmt.Errorf("exchange rate API URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange rate API returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("exchange rate API returned no rates")
	}

	table := make(RateTable, len(body.Rates)+1)
	for code, rate := range body.Rates {
		table[code] = rate
	}
	table[BaseCurrency] = 1

	return table, nil
}
