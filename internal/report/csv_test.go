package report_test

import (
	"bytes"
	"encoding/csv"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pruthagwin123/expense-tracker/internal/report"
)

var _ = Describe("WriteCSV", func() {
	parse := func(data []byte) [][]string {
		rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		return rows
	}

	It("should emit the fixed header even without records", func() {
		data, err := report.WriteCSV(nil)
		Expect(err).NotTo(HaveOccurred())

		rows := parse(data)
		Expect(rows).To(HaveLen(1))
		Expect(rows[0]).To(Equal([]string{"id", "user_id", "category_id", "amount", "description", "date", "recurring", "category"}))
	})

	It("should serialize one row per record in input order", func() {
		data, err := report.WriteCSV(sampleRecords())
		Expect(err).NotTo(HaveOccurred())

		rows := parse(data)
		Expect(rows).To(HaveLen(3))
		Expect(rows[1]).To(Equal([]string{"2", "7", "1", "42.50", "Weekly groceries", "2024-03-14", "", "Groceries"}))
		Expect(rows[2]).To(Equal([]string{"1", "7", "", "-5.00", "Refunded ticket", "2024-03-03", "", ""}))
	})

	It("should leave the category column empty for uncategorized records", func() {
		records := []report.ExpenseRecord{{
			ID:     3,
			UserID: 7,
			Amount: mustDecimal("9.99"),
			Date:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		}}

		data, err := report.WriteCSV(records)
		Expect(err).NotTo(HaveOccurred())

		rows := parse(data)
		Expect(rows[1][7]).To(Equal(""))
	})

	It("should quote descriptions containing commas and newlines", func() {
		records := []report.ExpenseRecord{{
			ID:          4,
			UserID:      7,
			Amount:      mustDecimal("1.00"),
			Description: "taxi, airport\nlate night",
			Date:        time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		}}

		data, err := report.WriteCSV(records)
		Expect(err).NotTo(HaveOccurred())

		rows := parse(data)
		Expect(rows[1][4]).To(Equal("taxi, airport\nlate night"))
	})

	It("should always render amounts with two decimals", func() {
		records := []report.ExpenseRecord{{
			ID:     5,
			UserID: 7,
			Amount: mustDecimal("10"),
			Date:   time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		}}

		data, err := report.WriteCSV(records)
		Expect(err).NotTo(HaveOccurred())

		rows := parse(data)
		Expect(rows[1][3]).To(Equal("10.00"))
	})

	It("should produce byte-identical output for identical input", func() {
		first, err := report.WriteCSV(sampleRecords())
		Expect(err).NotTo(HaveOccurred())
		second, err := report.WriteCSV(sampleRecords())
		Expect(err).NotTo(HaveOccurred())
		Expect(first).To(Equal(second))
	})
})
