package calendar

// Cursor 月份导航状态，Month 取 0-11，Year 不设边界，双向无限翻页。
// 翻页后所有"已选中日期"都随之失效，选中状态由调用方持有，翻页时必须清掉。
type Cursor struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Previous 上一个月；一月继续往前翻则落到上一年的十二月
func (c Cursor) Previous() Cursor {
	if c.Month == 0 {
		return Cursor{Month: 11, Year: c.Year - 1}
	}
	return Cursor{Month: c.Month - 1, Year: c.Year}
}

// Next 下一个月；十二月继续往后翻则落到下一年的一月
func (c Cursor) Next() Cursor {
	if c.Month == 11 {
		return Cursor{Month: 0, Year: c.Year + 1}
	}
	return Cursor{Month: c.Month + 1, Year: c.Year}
}

// Normalize 把越界的月份折回 0-11，月份 12 进位到下一年，-1 退回上一年。
// BuildMonthGrid 只接受归一化后的游标。
func Normalize(month, year int) Cursor {
	for month < 0 {
		month += 12
		year--
	}
	year += month / 12
	month %= 12
	return Cursor{Month: month, Year: year}
}
