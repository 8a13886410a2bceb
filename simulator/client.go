package simulator

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	loggergoModel "github.com/Alonza0314/logger-go/v2/model"
	"github.com/HanHongChen/cnsim-ctl/constant"
	"github.com/HanHongChen/cnsim-ctl/model"
	"github.com/HanHongChen/cnsim-ctl/util"
)

// RequestError reports a request that never got a response from the core
// simulator.
type RequestError struct {
	Method string
	Url    string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Url, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

type Result struct {
	Method     string
	Url        string
	StatusCode int
	Body       []byte
}

type Client struct {
	baseUrl    string
	httpClient *http.Client

	apiLog loggergoModel.LoggerInterface
}

// NewClient returns a client for the api under baseUrl. Each request is
// bounded by timeout; zero means no bound.
func NewClient(baseUrl string, timeout time.Duration, apiLog loggergoModel.LoggerInterface) *Client {
	return &Client{
		baseUrl:    strings.TrimSuffix(baseUrl, "/"),
		httpClient: &http.Client{Timeout: timeout},
		apiLog:     apiLog,
	}
}

func (c *Client) BaseUrl() string {
	return c.baseUrl
}

// Do sends method to the base url joined with path. A nil body sends no
// request body.
func (c *Client) Do(method, path string, body interface{}) (*Result, error) {
	url := c.baseUrl + path
	c.apiLog.Debugf("Sending %s %s", method, url)

	response, err := util.SendHttpRequest(c.httpClient, url, method, nil, body)
	if err != nil {
		c.apiLog.Warnf("%s %s failed: %v", method, url, err)
		return nil, &RequestError{Method: method, Url: url, Err: err}
	}

	c.apiLog.Infof("%s %s -> %d", method, url, response.StatusCode)
	return &Result{
		Method:     method,
		Url:        url,
		StatusCode: response.StatusCode,
		Body:       response.Body,
	}, nil
}

func (c *Client) Configure(profile model.Profile) (*Result, error) {
	return c.Do(http.MethodPost, constant.API_CONFIGURE, model.NewConfigureRequest(&profile))
}

func (c *Client) Start() (*Result, error) {
	return c.Do(http.MethodPost, constant.API_START, nil)
}

func (c *Client) Stop() (*Result, error) {
	return c.Do(http.MethodPost, constant.API_STOP, nil)
}

func (c *Client) Status() (*Result, error) {
	return c.Do(http.MethodGet, constant.API_STATUS, nil)
}
