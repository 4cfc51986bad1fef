package catalog

import "FundPicker/internal/model"

// Builtin is the catalog served when no file or database is configured.
var Builtin = []model.Fund{
	{Name: "Axis Bluechip Fund", Category: model.LargeCap, YearlyROI: 12.4},
	{Name: "Mirae Asset Large Cap Fund", Category: model.LargeCap, YearlyROI: 13.1},
	{Name: "ICICI Prudential Bluechip Fund", Category: model.LargeCap, YearlyROI: 14.2},
	{Name: "SBI Bluechip Fund", Category: model.LargeCap, YearlyROI: 12.9},
	{Name: "Nippon India Large Cap Fund", Category: model.LargeCap, YearlyROI: 15.3},
	{Name: "Kotak Emerging Equity Fund", Category: model.MidCap, YearlyROI: 19.8},
	{Name: "HDFC Mid-Cap Opportunities Fund", Category: model.MidCap, YearlyROI: 21.6},
	{Name: "Axis Midcap Fund", Category: model.MidCap, YearlyROI: 18.2},
	{Name: "DSP Midcap Fund", Category: model.MidCap, YearlyROI: 16.7},
	{Name: "Motilal Oswal Midcap Fund", Category: model.MidCap, YearlyROI: 24.1},
	{Name: "Axis Small Cap Fund", Category: model.SmallCap, YearlyROI: 22.5},
	{Name: "SBI Small Cap Fund", Category: model.SmallCap, YearlyROI: 23.4},
	{Name: "Nippon India Small Cap Fund", Category: model.SmallCap, YearlyROI: 27.9},
	{Name: "Kotak Small Cap Fund", Category: model.SmallCap, YearlyROI: 21.3},
	{Name: "Quant Small Cap Fund", Category: model.SmallCap, YearlyROI: 31.2},
	{Name: "UTI Nifty 50 Index Fund", Category: model.Index, YearlyROI: 12.1},
	{Name: "HDFC Index Fund Sensex Plan", Category: model.Index, YearlyROI: 11.8},
	{Name: "ICICI Prudential Nifty Next 50 Index Fund", Category: model.Index, YearlyROI: 13.6},
	{Name: "Motilal Oswal Nifty Midcap 150 Index Fund", Category: model.Index, YearlyROI: 19.4},
	{Name: "Navi Nifty 50 Index Fund", Category: model.Index, YearlyROI: 12.0},
	{Name: "HDFC Corporate Bond Fund", Category: model.Debt, YearlyROI: 7.1},
	{Name: "ICICI Prudential Gilt Fund", Category: model.Debt, YearlyROI: 7.6},
	{Name: "Aditya Birla Sun Life Liquid Fund", Category: model.Debt, YearlyROI: 6.4},
	{Name: "SBI Magnum Medium Duration Fund", Category: model.Debt, YearlyROI: 7.3},
	{Name: "Kotak Dynamic Bond Fund", Category: model.Debt, YearlyROI: 6.9},
	{Name: "Mirae Asset ELSS Tax Saver Fund", Category: model.ELSS, YearlyROI: 16.9},
	{Name: "Quant ELSS Tax Saver Fund", Category: model.ELSS, YearlyROI: 25.2},
	{Name: "Canara Robeco ELSS Tax Saver", Category: model.ELSS, YearlyROI: 15.4},
	{Name: "DSP ELSS Tax Saver Fund", Category: model.ELSS, YearlyROI: 17.8},
	{Name: "Parag Parikh Flexi Cap Fund", Category: model.FlexiCap, YearlyROI: 20.3},
	{Name: "HDFC Flexi Cap Fund", Category: model.FlexiCap, YearlyROI: 19.1},
	{Name: "JM Flexicap Fund", Category: model.FlexiCap, YearlyROI: 22.7},
	{Name: "UTI Flexi Cap Fund", Category: model.FlexiCap, YearlyROI: 14.6},
}

// NewBuiltinSource serves the Builtin catalog.
func NewBuiltinSource() *StaticSource {
	return &StaticSource{Label: "builtin", Funds: Builtin}
}
