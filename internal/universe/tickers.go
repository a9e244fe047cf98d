package universe

// Curated watchlists. These favor instruments with large intraday ranges:
// leveraged and inverse funds, crypto proxies, meme names and high-beta
// growth. The screener merge in provider.go widens the stock set at runtime.

var majorETFs = []string{
	"SPY", "QQQ", "DIA", "IWM", "VTI", "VOO", "VEA", "VWO", "AGG", "BND",
	"GLD", "SLV", "USO", "TLT", "HYG", "LQD", "EFA", "EEM", "FXI", "EWJ",
	"VGK", "VPL", "VXUS", "VTEB", "BNDX", "VCSH", "VCIT", "VCLT", "VGSH", "VGIT",
}

var sectorETFs = []string{
	"XLF", "XLE", "XLI", "XLK", "XLV", "XLP", "XLY", "XLB", "XLU", "XLC",
	"XBI", "XRT", "XHB", "XES", "XOP", "XME", "XPH", "XHS", "XSW", "XSD",
	"XWEB", "XHE", "XNTK", "XITK", "XTN", "XAR", "XAP", "XTL", "XTH",
	"SMH", "SOXX",
}

var leveragedETFs = []string{
	"TQQQ", "SQQQ", "SPXL", "SPXS", "UPRO", "SPXU",
	"SOXL", "SOXS", "TECL", "TECS", "CURE", "LABU", "LABD",
	"FAS", "FAZ", "TNA", "TZA", "UDOW", "SDOW", "UMDD", "SMDD",
	"URTY", "SRTY", "YINN", "YANG", "CWEB", "CHAD",
	"BOIL", "KOLD", "GUSH", "DRIP", "CORN", "WEAT", "UCO", "SCO",
	"UWT", "DWT", "USLV", "DSLV", "AGQ", "ZSL", "JNUG", "JDST",
	"NUGT", "DUST", "GDXJ", "GDX", "SILJ", "BULZ", "BERZ",
}

var cryptoETFs = []string{
	"BITO", "BITI", "BTCC", "BTCO", "HODL", "BITB", "BRRR", "EZBC",
	"BTCW", "ARKB", "IBIT", "FBTC", "GBTC", "ETHE", "BITQ", "BLOK",
	"LEGR", "KOIN", "ETHX", "ETHW", "ETHO",
}

var thematicETFs = []string{
	"ARKK", "ARKQ", "ARKG", "ARKW", "ARKF", "ARKX",
	"ROBO", "BOTZ", "IRBO", "QTEC", "IGV", "IGM", "IGE", "IGF",
	"SKYY", "HACK", "FINX", "SOCL", "FDN", "IBUY", "IBB",
	"IHI", "IHF", "IHE", "IYT", "IYZ", "IYW", "IYF", "IYE", "IYH",
	"IYM", "IYC", "IYJ", "IYR", "IYY",
	"VGT", "VUG", "VTV", "VXF", "VTHR", "VONG", "VONE",
	"FTEC", "FCOM", "FSTA", "FDIS", "FENY", "FMAT", "FIDU", "FREL",
	"FINS", "FITE", "FXL", "FXH", "FXU", "FXD", "FXG", "FXZ",
}

var techStocks = []string{
	"AAPL", "MSFT", "GOOGL", "GOOG", "AMZN", "META", "NFLX", "TSLA",
	"NVDA", "AMD", "INTC", "AVGO", "QCOM", "TXN", "MRVL", "SWKS",
	"MCHP", "NXPI", "ON", "WOLF", "DIOD", "ALGM", "SLAB", "CRUS",
	"OLED", "POWI", "SITM", "AMBA", "LSCC", "MPWR",
	"AMAT", "LRCX", "KLAC", "ASML", "TER", "ENTG", "ONTO", "ACLS",
}

var saasStocks = []string{
	"SNOW", "DDOG", "NET", "ZS", "CRWD", "OKTA", "DOCN", "ESTC",
	"ASAN", "ZM", "PTON", "FROG", "MDB", "MNDY", "BILL", "RPD",
	"APP", "APPN", "AVPT", "BL", "BSY", "CFLT", "FSLY", "GTLB",
	"NOW", "PCTY", "TEAM", "VEEV", "WK", "ZEN", "SHOP", "TWLO",
	"SPOT", "U", "PATH", "AI", "BBAI", "SOUN", "PLTR",
}

var memeStocks = []string{
	"GME", "AMC", "BB", "NOK", "SNDL", "EXPR", "NAKD", "KOSS",
	"BBBY", "CLOV", "WISH", "SPRT", "TLRY", "ACB", "CGC", "APHA",
	"HEXO", "OGI", "CRON", "SPCE", "ASTS", "OPEN",
}

var fintechStocks = []string{
	"SQ", "PYPL", "HOOD", "SOFI", "AFRM", "COIN", "UPST",
	"V", "MA", "AXP", "JPM", "BAC", "WFC", "C", "GS", "MS",
	"SCHW", "COF",
}

var cryptoMiners = []string{
	"RIOT", "MARA", "HUT", "HIVE", "CAN", "BITF", "ARBK", "CORZ",
	"CIFR", "WULF", "IREN", "CLSK", "BTBT", "MSTR", "SI",
}

var evStocks = []string{
	"LCID", "RIVN", "NIO", "XPEV", "LI", "F", "RIDE", "GM",
	"STLA", "HMC", "TM",
}

var biotechStocks = []string{
	"MRNA", "BNTX", "NVAX", "GILD", "REGN", "VRTX", "BIIB", "ALNY",
	"IONS", "FOLD", "ARWR", "SGMO", "BEAM", "CRSP", "NTLA", "EDIT",
	"BLUE", "RGNX", "RARE", "ILMN", "PACB", "OMCL", "TECH", "TMO",
	"DHR", "A", "BRKR", "WAT", "PKI", "ICHR", "NVCR", "EXAS",
	"NEO", "GH", "TDOC", "ALKS", "JNJ", "PFE", "MRK", "ABBV",
}

var energyStocks = []string{
	"XOM", "CVX", "COP", "SLB", "HAL", "OXY", "DVN", "EOG",
	"MPC", "VLO", "PSX", "HES", "MRO", "FANG", "CTRA", "OVV",
	"SWN", "RRC", "GPOR", "AR", "CRK", "LPI", "MGY", "MTDR",
}

var consumerStocks = []string{
	"WMT", "TGT", "HD", "LOW", "COST", "TJX", "ROST", "NKE",
	"LULU", "DKS", "BBY", "DIS", "PARA", "WBD", "FOXA", "CMCSA",
	"RBLX", "EA", "TTWO", "ATVI",
}

var industrialStocks = []string{
	"BA", "CAT", "GE", "HON", "MMM", "RTX", "LMT", "NOC",
	"GD", "TDG", "TXT", "DE", "CMI", "PCAR", "URI", "FAST",
}

var healthcareStocks = []string{
	"UNH", "CVS", "CI", "ANTM", "HUM", "ELV", "CNC", "MOH",
}

var reitStocks = []string{
	"AMT", "PLD", "EQIX", "PSA", "WELL", "VICI", "SPG", "O",
	"DLR", "EXPI", "RDFN", "Z",
}

var utilityStocks = []string{
	"NEE", "DUK", "SO", "AEP", "SRE", "EXC", "XEL", "WEC",
	"ES", "ETR", "PEG", "ED", "EIX", "FE", "AEE", "CMS",
}

func staticETFs() []string {
	var out []string
	out = append(out, majorETFs...)
	out = append(out, sectorETFs...)
	out = append(out, leveragedETFs...)
	out = append(out, cryptoETFs...)
	out = append(out, thematicETFs...)
	return out
}

func staticStocks() []string {
	var out []string
	out = append(out, techStocks...)
	out = append(out, saasStocks...)
	out = append(out, memeStocks...)
	out = append(out, fintechStocks...)
	out = append(out, cryptoMiners...)
	out = append(out, evStocks...)
	out = append(out, biotechStocks...)
	out = append(out, energyStocks...)
	out = append(out, consumerStocks...)
	out = append(out, industrialStocks...)
	out = append(out, healthcareStocks...)
	out = append(out, reitStocks...)
	out = append(out, utilityStocks...)
	return out
}
