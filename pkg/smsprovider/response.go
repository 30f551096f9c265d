package smsprovider

import (
	"fmt"
	"strconv"
	"strings"
)

const messageStatusSuccess = "SUCCESS"

// Response is the provider neutral outcome of a single accepted message.
type Response struct {
	MessageID string
	Cost      float64
	Status    string
}

type sendResponse struct {
	HTTPCode     int      `json:"http_code"`
	ResponseCode string   `json:"response_code"`
	ResponseMsg  string   `json:"response_msg"`
	Data         sendData `json:"data"`
}

type sendData struct {
	TotalPrice price             `json:"total_price"`
	Messages   []messageResponse `json:"messages"`
}

type messageResponse struct {
	To           string `json:"to"`
	MessageID    string `json:"message_id"`
	MessagePrice price  `json:"message_price"`
	Status       string `json:"status"`
}

// price is reported as a decimal string by ClickSend and as a number by some
// proxies in front of it.
type price float64

func (p *price) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*p = 0
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", s, err)
	}

	*p = price(f)
	return nil
}
