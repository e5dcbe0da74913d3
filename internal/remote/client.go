package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"

	"github.com/lunahealth/luna/internal/config"
	"github.com/lunahealth/luna/internal/models"
)

// Client issues the outbound calls every screen delegates to. It does
// no retries and no caching; timeouts are whatever the injected
// http.Client enforces.
//
// Two behaviors are deliberately uneven and load-bearing for callers:
// CalculateDueDate, SendChatText, AnalyzeFood and SubmitIncidentReport
// check the response status and surface a StatusError, while the four
// prediction calls and AskChatbot decode the body regardless of status,
// exactly as the screens consuming them expect.
type Client struct {
	httpClient *http.Client
	services   config.Services
}

// NewClient builds a transport client against the given service base
// URLs. A nil httpClient falls back to http.DefaultClient.
func NewClient(services config.Services, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, services: services}
}

// CalculateDueDate asks the calculation service for an estimated due
// date from the last menstrual period.
func (c *Client) CalculateDueDate(ctx context.Context, req models.DueDateRequest) (map[string]any, error) {
	resp, err := c.postJSON(ctx, c.services.CalcServiceURL+"/calculate-due-date", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return decodeBody(resp)
}

func (c *Client) PredictPeriodSimple(ctx context.Context, req models.SimplePredictionRequest) (map[string]any, error) {
	return c.predict(ctx, "/predict-period/simple", req)
}

func (c *Client) PredictPeriodAdvanced(ctx context.Context, req models.AdvancedPredictionRequest) (map[string]any, error) {
	return c.predict(ctx, "/predict-period/advanced", req)
}

func (c *Client) PredictOvulationSimple(ctx context.Context, req models.SimplePredictionRequest) (map[string]any, error) {
	return c.predict(ctx, "/predict-ovulation/simple", req)
}

func (c *Client) PredictOvulationAdvanced(ctx context.Context, req models.AdvancedPredictionRequest) (map[string]any, error) {
	return c.predict(ctx, "/predict-ovulation/advanced", req)
}

// predict posts to the calculation service and decodes whatever comes
// back, success status or not. A non-JSON body surfaces as a decode
// error rather than a StatusError.
func (c *Client) predict(ctx context.Context, path string, payload any) (map[string]any, error) {
	resp, err := c.postJSON(ctx, c.services.CalcServiceURL+path, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return decodeBody(resp)
}

// SendChatText posts a chat message as a multipart form to the
// form-encoded chat endpoint.
func (c *Client) SendChatText(ctx context.Context, message string) (map[string]any, error) {
	resp, err := c.postMultipart(ctx, c.services.ChatServiceURL+"/chat/text", func(form *multipart.Writer) error {
		return form.WriteField("message", message)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return decodeBody(resp)
}

// AskChatbot posts a free-text question as JSON. Like the prediction
// calls it decodes the body without checking the status first.
func (c *Client) AskChatbot(ctx context.Context, userInput string) (map[string]any, error) {
	resp, err := c.postJSON(ctx, c.services.ChatServiceURL+"/chatbot", models.ChatbotRequest{UserInput: userInput})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return decodeBody(resp)
}

// AnalyzeFood submits either the selected image or the name/description
// pair as a multipart form and returns the raw analysis envelope. A
// success response without a report yields ErrMissingReport.
func (c *Client) AnalyzeFood(ctx context.Context, input models.FoodAnalysisInput) (*models.AnalysisEnvelope, error) {
	resp, err := c.postMultipart(ctx, c.services.FoodAnalysisURL, func(form *multipart.Writer) error {
		if input.HasImage() {
			part, err := form.CreateFormFile("file", input.ImageName)
			if err != nil {
				return err
			}
			_, err = part.Write(input.ImageData)
			return err
		}
		if err := form.WriteField("food_name", input.FoodName); err != nil {
			return err
		}
		return form.WriteField("description", input.Description)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	envelope := &models.AnalysisEnvelope{}
	if err := json.NewDecoder(resp.Body).Decode(envelope); err != nil {
		return nil, errors.Wrap(err, "decode analysis response")
	}
	if envelope.Report == nil {
		return nil, ErrMissingReport
	}
	return envelope, nil
}

// SubmitIncidentReport posts the report as JSON. Only the status
// matters: the report endpoint has no success body contract.
func (c *Client) SubmitIncidentReport(ctx context.Context, report models.IncidentReport) error {
	resp, err := c.postJSON(ctx, c.services.ReportServiceURL, report)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

func (c *Client) postJSON(ctx context.Context, url string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encode request body")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	request.Header.Set("Content-Type", "application/json")

	return c.send(request)
}

func (c *Client) postMultipart(ctx context.Context, url string, fill func(*multipart.Writer) error) (*http.Response, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := fill(form); err != nil {
		return nil, errors.Wrap(err, "build multipart body")
	}
	if err := form.Close(); err != nil {
		return nil, errors.Wrap(err, "finalize multipart body")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	request.Header.Set("Content-Type", form.FormDataContentType())

	return c.send(request)
}

// send performs the request, converting transport failures into
// ConnectError so callers can tell "no response" from "bad response".
func (c *Client) send(request *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &ConnectError{Err: err}
	}
	return resp, nil
}

// checkStatus drains the body of a non-success response into a
// StatusError carrying the detail-derived message.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &StatusError{StatusCode: resp.StatusCode, Message: GenericFailureMessage}
	}
	return &StatusError{StatusCode: resp.StatusCode, Message: failureMessage(body)}
}

func decodeBody(resp *http.Response) (map[string]any, error) {
	payload := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode response body")
	}
	return payload, nil
}
