package filter

import (
	"fmt"
	"testing"
)

// generateTestRecords creates records shaped like a users/retrieve response
func generateTestRecords(count int) []Record {
	records := make([]Record, count)

	for i := 0; i < count; i++ {
		records[i] = Record{
			"id":       fmt.Sprintf("%d", i),
			"username": fmt.Sprintf("user%d", i),
			"limit":    fmt.Sprintf("%d", i%500),
			"created":  fmt.Sprintf("2024-%02d-01 10:00:00", i%12+1),
		}
	}

	return records
}

func BenchmarkCompileFilter(b *testing.B) {
	expressions := []struct {
		name string
		expr string
	}{
		{"simple", `username == "user1"`},
		{"complex", `contains(username, "9") and num(limit) > 100 and daysSince(parseTime(created)) > 30`},
	}

	for _, tc := range expressions {
		b.Run(tc.name+"/uncached", func(b *testing.B) {
			c := NewExprCompiler()
			for i := 0; i < b.N; i++ {
				if _, err := c.Compile(tc.expr); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(tc.name+"/cached", func(b *testing.B) {
			c := NewExprCompiler(WithCache(10))
			for i := 0; i < b.N; i++ {
				if _, err := c.Compile(tc.expr); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	records := generateTestRecords(1000)

	match, err := ParseAndCreateFilter(`username~"9" AND limit:>100`)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Apply(records, match)
	}
}
