package utils

import (
	"fmt"
	"strings"
)

// KVLogBuilder builds the key-value summary that ACD services log on request
// exit, of the form kv|key1=val1 key2=val2|. Items keep insertion order.
type KVLogBuilder struct {
	items []string
}

// Add appends a key-value item. A nil value is written as None, matching
// summaries produced by other ACD services.
func (b *KVLogBuilder) Add(key string, value interface{}) *KVLogBuilder {
	if value == nil {
		value = "None"
	}
	b.items = append(b.items, fmt.Sprintf("%s=%v", key, value))
	return b
}

// String renders the summary
func (b *KVLogBuilder) String() string {
	return "kv|" + strings.Join(b.items, " ") + "|"
}
