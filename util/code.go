package util

import (
	"strconv"
	"strings"
	"unicode"
)

// Code is an eastmoney market id, the number before the dot in a secid.
type Code uint8

const (
	MARKET_SZ Code = iota // 深交所, 北交所
	MARKET_SH             // 上交所
)

// split market decorations from a security code.
// accepts: 600000, sh600000, SH600000, 600000.SH, 1.600000
func splitCode(symbol string) (code string, market Code, ok bool) {
	s := strings.TrimSpace(symbol)

	// secid
	if i := strings.IndexByte(s, '.'); i > 0 {
		head, tail := s[:i], s[i+1:]
		switch strings.ToUpper(head) {
		case "0":
			return tail, MARKET_SZ, true
		case "1":
			return tail, MARKET_SH, true
		}
		switch strings.ToUpper(tail) {
		case "SH":
			return head, MARKET_SH, true
		case "SZ", "BJ":
			return head, MARKET_SZ, true
		}
		return s, 0, false
	}

	if len(s) > 2 && !unicode.IsDigit(rune(s[0])) {
		switch strings.ToUpper(s[:2]) {
		case "SH":
			return s[2:], MARKET_SH, true
		case "SZ", "BJ":
			return s[2:], MARKET_SZ, true
		}
	}
	return s, 0, false
}

// guess market by the first digit of a plain code
func guessMarket(code string) Code {
	if code == "" {
		return MARKET_SZ
	}
	return Exp(In(code[0:1], []string{"5", "6", "7", "9"}), MARKET_SH, MARKET_SZ)
}

// StripCode returns the bare code without market decorations.
func StripCode(symbol string) string {
	code, _, _ := splitCode(symbol)
	return code
}

// SecID returns the eastmoney secid, exp: 600000 -> 1.600000
func SecID(symbol string) string {
	code, market, ok := splitCode(symbol)
	if !ok {
		market = guessMarket(code)
	}
	return strconv.Itoa(int(market)) + "." + code
}
