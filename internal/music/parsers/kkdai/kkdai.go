package kkdai

import (
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"time"

	youtube "github.com/kkdai/youtube/v2"
	"golang.org/x/net/proxy"

	"tastybot/internal/music/parsers"
)

type KKDAIStreamer struct {
	Proxy string
}

func (s *KKDAIStreamer) GetLinkStream(ctx context.Context, track *parsers.TrackParse) (io.ReadCloser, func(), error) {
	return s.kkdaiLink(ctx, track)
}
func (s *KKDAIStreamer) GetPipeStream(ctx context.Context, track *parsers.TrackParse) (io.ReadCloser, func(), error) {
	return s.kkdaiPipe(ctx, track)
}
func (s *KKDAIStreamer) SupportsPipe() bool {
	return true
}

// NewClient builds a kkdai client, optionally routed through an http(s) or
// socks5 proxy.
func NewClient(proxyStr string) *youtube.Client {
	raw := &youtube.Client{
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	if proxyStr == "" {
		return raw
	}

	proxyURL, err := url.Parse(proxyStr)
	if err != nil {
		log.Printf("[kkdai] invalid proxy format: %v", err)
		return raw
	}

	var transport *http.Transport

	switch proxyURL.Scheme {
	case "http", "https":
		transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL),
		}
	case "socks5":
		auth := &proxy.Auth{}
		if proxyURL.User != nil {
			auth.User = proxyURL.User.Username()
			if pass, ok := proxyURL.User.Password(); ok {
				auth.Password = pass
			}
		}
		dialer, err := proxy.SOCKS5("tcp", proxyURL.Host, auth, &net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 10 * time.Second,
		})
		if err != nil {
			log.Printf("[kkdai] SOCKS5 dialer error: %v", err)
			break
		}
		transport = &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			},
		}
	default:
		log.Printf("[kkdai] unsupported proxy scheme: %s", proxyURL.Scheme)
	}

	if transport == nil {
		return raw
	}

	return &youtube.Client{
		HTTPClient: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}
