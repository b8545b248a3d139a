package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
	"github.com/Telli/betts-ctis-sub020/internal/usecase/interfaces"
)

var ErrMissingSLSwitchBaseURL = errors.New("missing SLSWITCH_BASE_URL")

// slswitchStatusMap is the finite mapping from switch status tokens to the
// domain enum. Both the ISO-20022 codes and their literal forms appear in
// webhook bodies and poll responses. Unrecognized tokens fall back to pending
// rather than erroring: the poller will ask again.
var slswitchStatusMap = map[string]entities.TransactionStatus{
	"ACSC":      entities.StatusCompleted,
	"COMPLETED": entities.StatusCompleted,
	"RJCT":      entities.StatusFailed,
	"FAILED":    entities.StatusFailed,
	"PDNG":      entities.StatusPending,
}

// MapSLSwitchStatus resolves a raw switch status token, defaulting safely.
func MapSLSwitchStatus(token string) entities.TransactionStatus {
	if s, ok := slswitchStatusMap[strings.ToUpper(strings.TrimSpace(token))]; ok {
		return s
	}
	return entities.StatusPending
}

// slswitchNotification is the XML status report the switch posts to the
// webhook endpoint. EndToEndId carries our transaction reference.
type slswitchNotification struct {
	XMLName    xml.Name `xml:"PmtNtfctn"`
	EndToEndID string   `xml:"EndToEndId"`
	TxSts      string   `xml:"TxSts"`
	Amt        float64  `xml:"Amt"`
	StsRsnInf  string   `xml:"StsRsnInf"`
}

type slswitchPaymentResponse struct {
	TransactionID string  `json:"transactionId"`
	EndToEndID    string  `json:"endToEndId"`
	Status        string  `json:"status"`
	Message       string  `json:"message"`
	Amount        float64 `json:"amount"`
}

// SLSwitchGateway integrates the Sierra Leone national payment switch.
//
// Initiate/GetStatus/Refund go over the switch REST API; asynchronous status
// reports arrive as XML webhooks authenticated with an HMAC-SHA256 signature
// over the raw body.

type SLSwitchGateway struct {
	baseURL       string
	apiKey        string
	webhookSecret string
	httpClient    *http.Client
}

var _ interfaces.IPaymentGateway = (*SLSwitchGateway)(nil)

func NewSLSwitchGateway() (*SLSwitchGateway, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("SLSWITCH_BASE_URL")), "/")
	if baseURL == "" {
		log.Printf("[payment][gateway] missing SLSWITCH_BASE_URL")
		return nil, ErrMissingSLSwitchBaseURL
	}
	return &SLSwitchGateway{
		baseURL:       baseURL,
		apiKey:        os.Getenv("SLSWITCH_API_KEY"),
		webhookSecret: os.Getenv("SLSWITCH_WEBHOOK_SECRET"),
		httpClient:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (g *SLSwitchGateway) Provider() entities.PaymentProvider { return entities.ProviderSLSwitch }

func (g *SLSwitchGateway) Initiate(ctx context.Context, req interfaces.InitiateRequest) (interfaces.GatewayResponse, error) {
	body := map[string]any{
		"endToEndId":  req.PaymentID,
		"amount":      req.Amount,
		"currency":    req.Currency,
		"description": req.Description,
		"payerPhone":  req.PayerPhone,
	}
	resp, err := g.call(ctx, http.MethodPost, "/v1/payments", body)
	if err != nil {
		return interfaces.GatewayResponse{}, err
	}
	return g.toGatewayResponse(resp), nil
}

func (g *SLSwitchGateway) GetStatus(ctx context.Context, providerTransactionID string) (interfaces.GatewayResponse, error) {
	path := fmt.Sprintf("/v1/payments/%s/status", providerTransactionID)
	resp, err := g.call(ctx, http.MethodGet, path, nil)
	if err != nil {
		return interfaces.GatewayResponse{}, err
	}
	return g.toGatewayResponse(resp), nil
}

func (g *SLSwitchGateway) Refund(ctx context.Context, providerTransactionID string, amount float64) (interfaces.GatewayResponse, error) {
	path := fmt.Sprintf("/v1/payments/%s/refund", providerTransactionID)
	resp, err := g.call(ctx, http.MethodPost, path, map[string]any{"amount": amount})
	if err != nil {
		return interfaces.GatewayResponse{}, err
	}
	out := g.toGatewayResponse(resp)
	if out.Success && out.Status == entities.StatusCompleted {
		out.Status = entities.StatusRefunded
	}
	return out, nil
}

// ValidateWebhook checks the HMAC-SHA256 of the raw body against the shared
// webhook secret. An unset secret disables the check (local/dev).
func (g *SLSwitchGateway) ValidateWebhook(_ context.Context, rawBody []byte, signature string) (bool, error) {
	if g.webhookSecret == "" {
		return true, nil
	}
	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(signature)))), nil
}

func (g *SLSwitchGateway) ProcessWebhook(_ context.Context, rawBody []byte) (interfaces.GatewayResponse, error) {
	var n slswitchNotification
	if err := xml.Unmarshal(rawBody, &n); err != nil {
		return interfaces.GatewayResponse{}, fmt.Errorf("malformed switch notification: %w", err)
	}
	if strings.TrimSpace(n.EndToEndID) == "" {
		return interfaces.GatewayResponse{}, errors.New("switch notification missing EndToEndId")
	}

	status := MapSLSwitchStatus(n.TxSts)
	message := n.TxSts
	if n.StsRsnInf != "" {
		message = fmt.Sprintf("%s: %s", n.TxSts, n.StsRsnInf)
	}
	resp := interfaces.GatewayResponse{
		Success:           true,
		TransactionID:     n.EndToEndID,
		ProviderReference: n.EndToEndID,
		Status:            status,
		StatusMessage:     message,
	}
	if n.Amt > 0 {
		amt := n.Amt
		resp.Amount = &amt
	}
	return resp, nil
}

func (g *SLSwitchGateway) call(ctx context.Context, method, path string, body map[string]any) (slswitchPaymentResponse, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return slswitchPaymentResponse{}, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return slswitchPaymentResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	httpResp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[payment][gateway] slswitch call failed method=%s path=%s err=%v", method, path, err)
		return slswitchPaymentResponse{}, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return slswitchPaymentResponse{}, err
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		log.Printf("[payment][gateway] slswitch non-2xx method=%s path=%s status=%d", method, path, httpResp.StatusCode)
		return slswitchPaymentResponse{}, fmt.Errorf("slswitch %s %s: status %d: %s", method, path, httpResp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var resp slswitchPaymentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return slswitchPaymentResponse{}, fmt.Errorf("slswitch response unmarshal: %w", err)
	}
	return resp, nil
}

func (g *SLSwitchGateway) toGatewayResponse(resp slswitchPaymentResponse) interfaces.GatewayResponse {
	reference := resp.EndToEndID
	if reference == "" {
		reference = resp.TransactionID
	}
	out := interfaces.GatewayResponse{
		Success:           true,
		TransactionID:     resp.TransactionID,
		ProviderReference: reference,
		Status:            MapSLSwitchStatus(resp.Status),
		StatusMessage:     resp.Message,
	}
	if out.StatusMessage == "" {
		out.StatusMessage = resp.Status
	}
	if resp.Amount > 0 {
		amt := resp.Amount
		out.Amount = &amt
	}
	return out
}
