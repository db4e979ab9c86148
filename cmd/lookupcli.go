// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

type Config struct {
	BaseURL string
	Number  string
	Region  string
	Types   bool
	Timeout time.Duration
}

type Client struct {
	config Config
	http   *http.Client
}

func NewClient(config Config) *Client {
	return &Client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
	}
}

func (c *Client) get(path string, query url.Values) ([]byte, int, error) {
	u, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return nil, 0, fmt.Errorf("parse base url: %w", err)
	}
	u.Path = path
	u.RawQuery = query.Encode()

	resp, err := c.http.Get(u.String())
	if err != nil {
		return nil, 0, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read body: %w", err)
	}

	return body, resp.StatusCode, nil
}

func (c *Client) LookupNumber() ([]byte, int, error) {
	query := url.Values{"phone_number": {c.config.Number}}
	if c.config.Region != "" {
		query.Set("default_region", c.config.Region)
	}
	return c.get("/phone-info", query)
}

func (c *Client) ListTypes() ([]byte, int, error) {
	return c.get("/phone-types", nil)
}

func prettyPrint(body []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(buf.String())
}

func main() {
	cfg := Config{}
	flag.StringVar(&cfg.BaseURL, "url", "http://localhost:8080", "Server base URL")
	flag.StringVar(&cfg.Number, "number", "", "Phone number to look up")
	flag.StringVar(&cfg.Region, "region", "", "Default region for numbers without a country code")
	flag.BoolVar(&cfg.Types, "types", false, "Print the phone type code table")
	flag.DurationVar(&cfg.Timeout, "timeout", 10*time.Second, "Request timeout")
	flag.Parse()

	if cfg.Number == "" && !cfg.Types {
		log.Fatal("Flag -number or -types is required.")
	}

	client := NewClient(cfg)

	if cfg.Types {
		body, status, err := client.ListTypes()
		if err != nil {
			log.Fatalf("Type table request failed: %v", err)
		}
		if status != http.StatusOK {
			prettyPrint(body)
			log.Fatalf("Server returned status %d", status)
		}
		prettyPrint(body)
	}

	if cfg.Number != "" {
		body, status, err := client.LookupNumber()
		if err != nil {
			log.Fatalf("Lookup request failed: %v", err)
		}
		if status != http.StatusOK {
			prettyPrint(body)
			log.Fatalf("Server returned status %d", status)
		}
		prettyPrint(body)
	}
}

// go run ./cmd/lookupcli.go -number +14155552671
