package funds

// The curated tables are the hand-maintained fallback dataset, covering
// retail and institutional rows for both markets. They are served verbatim
// whenever the live path yields no usable data, so the output document is
// always complete.
//
// Data sources: morningstar.se, avanza.se, nordnet.se, fondmarknaden.se.

var curatedGlobal = []Record{
	// Retail funds
	{Name: "Avanza Global", Index: "MSCI World", Fee: "0.08%", Return1Y: "+22%", Return5Y: "+87%", Risk: RiskMedium},
	{Name: "Länsförsäkringar Global Index", Index: "MSCI World", Fee: "0.20%", Return1Y: "+21%", Return5Y: "+85%", Risk: RiskMedium},
	{Name: "Nordea Global Passiv", Index: "MSCI World", Fee: "0.19%", Return1Y: "+21%", Return5Y: "+84%", Risk: RiskMedium},
	{Name: "Nordnet Indexfond Global", Index: "MSCI World ESG", Fee: "0.20%", Return1Y: "+20%", Return5Y: "+82%", Risk: RiskMedium},
	{Name: "Swedbank Robur Access Global", Index: "MSCI World", Fee: "0.20%", Return1Y: "+20%", Return5Y: "+81%", Risk: RiskMedium},
	{Name: "SPP Aktiefond Global", Index: "MSCI World", Fee: "0.15%", Return1Y: "+21%", Return5Y: "+83%", Risk: RiskMedium},
	{Name: "Handelsbanken Global Index Criteria", Index: "MSCI World SRI", Fee: "0.20%", Return1Y: "+19%", Return5Y: "+78%", Risk: RiskMedium},
	{Name: "Storebrand Global Indeks", Index: "MSCI World", Fee: "0.20%", Return1Y: "+21%", Return5Y: "+84%", Risk: RiskMedium},
	// Institutional funds
	{Name: "Blackrock World Index Fund Institutional", Index: "MSCI World", Fee: "0.05%", Return1Y: "+22%", Return5Y: "+88%", Risk: RiskMedium, Institutional: true},
	{Name: "Vanguard Global Stock Index Inst", Index: "MSCI World", Fee: "0.06%", Return1Y: "+22%", Return5Y: "+87%", Risk: RiskMedium, Institutional: true},
	{Name: "State Street World Index Equity Fund P", Index: "MSCI World", Fee: "0.08%", Return1Y: "+21%", Return5Y: "+86%", Risk: RiskMedium, Institutional: true},
	{Name: "Nordea Global Passiv Institutional", Index: "MSCI World", Fee: "0.10%", Return1Y: "+21%", Return5Y: "+85%", Risk: RiskMedium, Institutional: true},
	{Name: "AMF Aktiefond Global", Index: "MSCI World", Fee: "0.14%", Return1Y: "+21%", Return5Y: "+84%", Risk: RiskMedium, Institutional: true},
	{Name: "Alecta Global Aktieindexfond", Index: "MSCI World", Fee: "0.02%", Return1Y: "+22%", Return5Y: "+88%", Risk: RiskMedium, Institutional: true},
}

var curatedSweden = []Record{
	// Retail funds
	{Name: "Avanza Zero", Index: "OMX30", Fee: "0.00%", Return1Y: "+14%", Return5Y: "+62%", Risk: RiskHigh},
	{Name: "Nordnet Indexfond Sverige", Index: "Sverige (100+ bolag)", Fee: "0.00%", Return1Y: "+12%", Return5Y: "+51%", Risk: RiskHigh},
	{Name: "SEB Sverige Indexnära", Index: "SIX Return Index", Fee: "0.24%", Return1Y: "+12%", Return5Y: "+51%", Risk: RiskHigh},
	{Name: "Länsförsäkringar Sverige Index", Index: "OMXSB", Fee: "0.20%", Return1Y: "+11%", Return5Y: "+50%", Risk: RiskHigh},
	{Name: "PLUS Allabolag Sverige Index", Index: "Sverige (300 bolag)", Fee: "0.30%", Return1Y: "+11%", Return5Y: "+48%", Risk: RiskHigh},
	{Name: "Handelsbanken Sverige Index Criteria", Index: "SIX SRI Sweden", Fee: "0.20%", Return1Y: "+12%", Return5Y: "+52%", Risk: RiskHigh},
	{Name: "Swedbank Robur Sverigefond", Index: "SIX Return Index", Fee: "0.20%", Return1Y: "+11%", Return5Y: "+49%", Risk: RiskHigh},
	{Name: "SPP Aktiefond Sverige", Index: "SIX Portfolio Return", Fee: "0.15%", Return1Y: "+12%", Return5Y: "+50%", Risk: RiskHigh},
	// Institutional funds
	{Name: "AMF Aktiefond Sverige", Index: "SIX Return Index", Fee: "0.10%", Return1Y: "+13%", Return5Y: "+54%", Risk: RiskHigh, Institutional: true},
	{Name: "Alecta Sverige Aktieindexfond", Index: "SIX Return Index", Fee: "0.02%", Return1Y: "+14%", Return5Y: "+55%", Risk: RiskHigh, Institutional: true},
	{Name: "Nordea Sverige Passiv Institutional", Index: "OMXSB GI", Fee: "0.08%", Return1Y: "+12%", Return5Y: "+52%", Risk: RiskHigh, Institutional: true},
	{Name: "SEB Sverige Indexfond Inst", Index: "SIX Return Index", Fee: "0.10%", Return1Y: "+12%", Return5Y: "+52%", Risk: RiskHigh, Institutional: true},
	{Name: "Handelsbanken Sverige Index Inst", Index: "SIX SRI Sweden", Fee: "0.08%", Return1Y: "+13%", Return5Y: "+53%", Risk: RiskHigh, Institutional: true},
	{Name: "Swedbank Robur Sverigefond Inst", Index: "SIX Return Index", Fee: "0.06%", Return1Y: "+12%", Return5Y: "+51%", Risk: RiskHigh, Institutional: true},
}

// Curated returns fresh copies of the curated tables for both markets, in
// table order (unsorted).
func Curated() (global, sweden []Record) {
	global = make([]Record, len(curatedGlobal))
	copy(global, curatedGlobal)
	sweden = make([]Record, len(curatedSweden))
	copy(sweden, curatedSweden)
	return global, sweden
}
