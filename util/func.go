package util

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

var (
	ErrUnavailable = errors.New("upstream unavailable")
	ErrUnparseable = errors.New("upstream data unparseable")
	ErrNotFound    = errors.New("not found")
)

// In slice
func In[T string | int](mem T, arr []T) bool {
	for i := range arr {
		if mem == arr[i] {
			return true
		}
	}
	return false
}

// expressions
func Exp[T any](isTrue bool, yes T, no T) T {
	if isTrue {
		return yes
	} else {
		return no
	}
}

// http get and read, one shot without retry
func GetAndRead(ctx context.Context, client *http.Client, url string, header ...map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	for _, h := range header {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}

	res, err := client.Do(req)
	if err != nil {
		log.Warn().Str("url", url).Msg(err.Error())
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		log.Warn().Str("url", url).Msgf("http status %d", res.StatusCode)
		return nil, fmt.Errorf("%w: http %d", ErrUnavailable, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return body, nil
}

// unmarshal the node at path into data, data must be a pointer
func UnmarshalJSON(body []byte, data any, path ...any) error {
	node, err := sonic.Get(body, path...)
	if err != nil {
		log.Warn().Msgf("unmarshal node err: %v", err)
		return fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	raw, err := node.Raw()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	if err = sonic.UnmarshalString(raw, data); err != nil {
		return fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return nil
}

// HasChinese any han character, exp: *ST东园
func HasChinese(str string) bool {
	for _, r := range str {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}
