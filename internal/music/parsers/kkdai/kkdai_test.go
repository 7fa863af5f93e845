package kkdai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractYouTubeID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "watch url", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "watch url with params", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42", want: "dQw4w9WgXcQ"},
		{name: "short url", url: "https://youtu.be/dQw4w9WgXcQ?si=abc", want: "dQw4w9WgXcQ"},
		{name: "short url without id", url: "https://youtu.be/", wantErr: true},
		{name: "other host", url: "https://soundcloud.com/a/b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractYouTubeID(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewClientFallsBackWithoutProxy(t *testing.T) {
	c := NewClient("")
	require.NotNil(t, c.HTTPClient)
	assert.Nil(t, c.HTTPClient.Transport)

	c = NewClient("ftp://nope")
	require.NotNil(t, c.HTTPClient)
	assert.Nil(t, c.HTTPClient.Transport)

	c = NewClient("http://127.0.0.1:3128")
	assert.NotNil(t, c.HTTPClient.Transport)
}
