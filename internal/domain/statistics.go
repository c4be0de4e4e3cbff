package domain

import "fmt"

// PriceRange é um intervalo fechado [Min, Max] usado no gráfico de barras
type PriceRange struct {
	Min int64
	Max int64
}

func (p PriceRange) Label() string {
	return fmt.Sprintf("%d - %d", p.Min, p.Max)
}

// PriceRanges são as faixas fixas do gráfico de barras, nesta ordem.
// Não existe faixa de overflow: preços acima de 10000 não entram em nenhuma.
var PriceRanges = []PriceRange{
	{Min: 0, Max: 100},
	{Min: 101, Max: 200},
	{Min: 201, Max: 300},
	{Min: 301, Max: 400},
	{Min: 401, Max: 500},
	{Min: 501, Max: 600},
	{Min: 601, Max: 700},
	{Min: 701, Max: 800},
	{Min: 801, Max: 900},
	{Min: 901, Max: 10000},
}

// SalesSummary é o resultado bruto da agregação mensal no repositório
type SalesSummary struct {
	TotalSaleAmount *float64
	SoldItems       int64
	NotSoldItems    int64
}

type SaleAmount struct {
	Total *float64 `json:"total"`
}

type ItemCount struct {
	Count int64 `json:"count"`
}

type Statistics struct {
	TotalSaleAmount SaleAmount `json:"totalSaleAmount"`
	SoldItems       ItemCount  `json:"soldItems"`
	NotSoldItems    ItemCount  `json:"notSoldItems"`
}

type PriceRangeCount struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

type BarChart struct {
	BarChartData []PriceRangeCount `json:"barChartData"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type PieChart struct {
	PieChartData []CategoryCount `json:"pieChartData"`
}
