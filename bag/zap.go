package bag

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Entries adapts b to a zapcore.ArrayMarshaler so its contents can be logged
// with zap.Array. Entries are rendered with fmt.Sprint in enumeration order.
func Entries[T comparable](b Interface[T]) zapcore.ArrayMarshaler {
	return zapcore.ArrayMarshalerFunc(func(enc zapcore.ArrayEncoder) error {
		b.ForEach(func(entry T) bool {
			enc.AppendString(fmt.Sprint(entry))
			return false
		})

		return nil
	})
}

// Format renders entries as "[A, B, C]".
func Format[T any](entries []T) string {
	items := make([]string, 0, len(entries))

	for _, entry := range entries {
		items = append(items, fmt.Sprint(entry))
	}

	return fmt.Sprintf("[%s]", strings.Join(items, ", "))
}
