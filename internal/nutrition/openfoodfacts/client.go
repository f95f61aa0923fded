package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/workoutmanager/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultBaseURL = "https://world.openfoodfacts.org"
	userAgent      = "workoutmanager/1.0"
	kJPerKcal      = 4.184
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidBarcode  = errors.New("invalid barcode")
)

// Product holds the per 100g nutriments of an Open Food Facts product.
// Energy is in kcal, all the rest in grams.
type Product struct {
	Code               string
	Name               string
	Language           string
	ServingGrams       float64
	Energy             float64
	Protein            float64
	Carbohydrates      float64
	CarbohydratesSugar float64
	Fat                float64
	FatSaturated       float64
	Fibres             float64
	Sodium             float64
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *Client) LookupBarcode(ctx context.Context, barcode string) (_ *Product, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "openfoodfacts.lookupBarcode")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("barcode", barcode))

	if !validBarcode(barcode) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBarcode, barcode)
	}

	reqURL := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	span.SetAttributes(attribute.Int("status_code", resp.StatusCode))
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrProductNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	var parsed offResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if parsed.Status != 1 || strings.TrimSpace(parsed.Product.ProductName) == "" {
		return nil, ErrProductNotFound
	}

	return parsed.Product.toProduct(barcode), nil
}

func validBarcode(barcode string) bool {
	if len(barcode) < 6 || len(barcode) > 14 {
		return false
	}
	for _, r := range barcode {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type offResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

type offProduct struct {
	Code            string         `json:"code"`
	ProductName     string         `json:"product_name"`
	Lang            string         `json:"lang"`
	ServingQuantity any            `json:"serving_quantity"`
	Nutriments      map[string]any `json:"nutriments"`
}

func (p offProduct) toProduct(barcode string) *Product {
	code := strings.TrimSpace(p.Code)
	if code == "" {
		code = barcode
	}
	lang := strings.ToLower(strings.TrimSpace(p.Lang))
	if lang == "" {
		lang = "en"
	}

	energy, ok := p.nutriment("energy-kcal")
	if !ok {
		if kj, ok := p.nutriment("energy"); ok {
			energy = kj / kJPerKcal
		}
	}
	servingGrams, _ := parseFloatAny(p.ServingQuantity)

	protein, _ := p.nutriment("proteins")
	carbs, _ := p.nutriment("carbohydrates")
	sugars, _ := p.nutriment("sugars")
	fat, _ := p.nutriment("fat")
	saturated, _ := p.nutriment("saturated-fat")
	fiber, _ := p.nutriment("fiber")
	sodium, _ := p.nutriment("sodium")

	return &Product{
		Code:               code,
		Name:               strings.TrimSpace(p.ProductName),
		Language:           lang,
		ServingGrams:       servingGrams,
		Energy:             energy,
		Protein:            protein,
		Carbohydrates:      carbs,
		CarbohydratesSugar: sugars,
		Fat:                fat,
		FatSaturated:       saturated,
		Fibres:             fiber,
		Sodium:             sodium,
	}
}

func (p offProduct) nutriment(name string) (float64, bool) {
	return parseFloatAny(p.Nutriments[name+"_100g"])
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
