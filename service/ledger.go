package service

import (
	"time"

	"laundry/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DayTotal 单日营收
type DayTotal struct {
	Date  string  `json:"date"` // 2006-01-02
	Total float64 `json:"total"`
}

// MonthTotal 单月营收
type MonthTotal struct {
	Label string  `json:"label"` // 例如 "January 2024"
	Total float64 `json:"total"`
}

// WeekTotal 单周营收，固定覆盖周一到周日 7 天，无营收的日期补零
type WeekTotal struct {
	WeekStart string     `json:"week_start"` // 周一
	WeekEnd   string     `json:"week_end"`   // 周日
	Days      []DayTotal `json:"days"`
	Total     float64    `json:"total"`
}

const dateLayout = "2006-01-02"

// DayOf 截断到日粒度，台账以日为键
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CreditIncome 为指定日期的台账累加金额：无该日记录则创建，有则累加。
// 通过 ON DUPLICATE KEY UPDATE 的原子自增保证并发下不丢失累加。
// 调用方负责把它和订单创建放进同一个事务。
func CreditIncome(db *gorm.DB, date time.Time, amount float64) error {
	entry := models.Income{Date: DayOf(date), Total: amount}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"total": gorm.Expr("total + ?", amount)}),
	}).Create(&entry).Error
}

// fetchEntries 按日期倒序取出全部台账记录
func fetchEntries(db *gorm.DB) ([]models.Income, error) {
	var entries []models.Income
	if err := db.Model(&models.Income{}).Order("date DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// DailyTotals 按日营收，新日期在前
func DailyTotals(db *gorm.DB) ([]DayTotal, error) {
	entries, err := fetchEntries(db)
	if err != nil {
		return nil, err
	}
	days := make([]DayTotal, 0, len(entries))
	for _, e := range entries {
		days = append(days, DayTotal{Date: e.Date.Format(dateLayout), Total: e.Total})
	}
	return days, nil
}

// MonthlyTotals 按自然月汇总营收，新月份在前
func MonthlyTotals(db *gorm.DB) ([]MonthTotal, error) {
	entries, err := fetchEntries(db)
	if err != nil {
		return nil, err
	}
	return groupMonths(entries), nil
}

// groupMonths 把倒序的日台账按月归并。倒序输入保证月份同样新在前
func groupMonths(entries []models.Income) []MonthTotal {
	months := make([]MonthTotal, 0)
	index := make(map[string]int)
	for _, e := range entries {
		label := e.Date.Format("January 2006")
		if i, ok := index[label]; ok {
			months[i].Total += e.Total
			continue
		}
		index[label] = len(months)
		months = append(months, MonthTotal{Label: label, Total: e.Total})
	}
	return months
}

// WeeklyTotals 按周一至周日的自然周汇总营收，新的周在前。
// 覆盖范围从最早记录所在周的周一到最晚记录所在周的周日，中间无营收的日期补零
func WeeklyTotals(db *gorm.DB) ([]WeekTotal, error) {
	entries, err := fetchEntries(db)
	if err != nil {
		return nil, err
	}
	return buildWeeks(entries), nil
}

// mondayOf 返回所在自然周的周一
func mondayOf(d time.Time) time.Time {
	// time.Weekday 以周日为 0，这里换算成周一为起点
	offset := (int(d.Weekday()) + 6) % 7
	return DayOf(d).AddDate(0, 0, -offset)
}

// buildWeeks 把倒序的日台账切分成连续的周一至周日窗口
func buildWeeks(entries []models.Income) []WeekTotal {
	if len(entries) == 0 {
		return []WeekTotal{}
	}

	totals := make(map[string]float64, len(entries))
	for _, e := range entries {
		totals[e.Date.Format(dateLayout)] = e.Total
	}

	// entries 为倒序：首条最新，末条最早
	latest := entries[0].Date
	earliest := entries[len(entries)-1].Date
	firstMonday := mondayOf(earliest)

	weeks := make([]WeekTotal, 0)
	for monday := mondayOf(latest); !monday.Before(firstMonday); monday = monday.AddDate(0, 0, -7) {
		week := WeekTotal{
			WeekStart: monday.Format(dateLayout),
			WeekEnd:   monday.AddDate(0, 0, 6).Format(dateLayout),
			Days:      make([]DayTotal, 0, 7),
		}
		for i := 0; i < 7; i++ {
			date := monday.AddDate(0, 0, i).Format(dateLayout)
			total := totals[date]
			week.Days = append(week.Days, DayTotal{Date: date, Total: total})
			week.Total += total
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// GrandTotal 台账总营收，空台账返回 0
func GrandTotal(db *gorm.DB) (float64, error) {
	var total float64
	err := db.Model(&models.Income{}).Select("COALESCE(SUM(total), 0)").Scan(&total).Error
	return total, err
}

// DeleteMonth 删除指定自然月的全部台账记录，
// 返回删除条数和删除后的总营收。删除和汇总在同一事务内完成
func DeleteMonth(db *gorm.DB, year int, month time.Month) (int64, float64, error) {
	var deleted int64
	var remaining float64
	err := db.Transaction(func(tx *gorm.DB) error {
		start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		end := start.AddDate(0, 1, 0)
		res := tx.Where("date >= ? AND date < ?", start, end).Delete(&models.Income{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return tx.Model(&models.Income{}).Select("COALESCE(SUM(total), 0)").Scan(&remaining).Error
	})
	if err != nil {
		return 0, 0, err
	}
	return deleted, remaining, nil
}
