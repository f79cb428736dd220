package datedim

import "github.com/datakiln/dimgen/pkg/dimension"

// Schema is the dim_date column layout. Column order here is the CSV
// column order.
var Schema = dimension.MustSchema("date", []string{
	"date_key:UInt32",
	"date:Date",
	"year:UInt16",
	"quarter:UInt8",
	"quarter_name:String",
	"quarter_short_name:String",
	"year_and_quarter:String",
	"month_number:UInt8",
	"month_name:String",
	"month_abbrev:String",
	"year_and_month:String",
	"year_and_month_abbrev:String",
	"month_end_flag:Bool",
	"week_num_in_year:UInt8",
	"week_num_in_month:UInt8",
	"week_begin_date:Date",
	"week_begin_date_key:UInt32",
	"day_of_month:UInt8",
	"day_of_week:UInt8",
	"day_of_year:UInt16",
	"day_name:String",
	"day_name_abbrev:String",
	"is_weekday:Bool",
	"is_weekend:Bool",
	"is_holiday:Bool",
	"holiday_name:String",
	"same_day_previous_year:Date",
	"same_day_previous_year_key:UInt32",
	"season:String",
})
