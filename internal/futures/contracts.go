package futures

// contracts is the reference table used by the PnL calculator, keyed by
// upper-case symbol.
var contracts = index(
	// equity index
	contract("ES", "0.25", "12.5", "E-mini S&P 500", "CME"),
	contract("MES", "0.25", "1.25", "Micro E-mini S&P 500", "CME"),
	contract("NQ", "0.25", "5.0", "E-mini Nasdaq-100", "CME"),
	contract("MNQ", "0.25", "0.5", "Micro E-mini Nasdaq-100", "CME"),
	contract("YM", "1.0", "5.0", "E-mini Dow", "CBOT"),
	contract("MYM", "1.0", "0.5", "Micro E-mini Dow", "CBOT"),
	contract("RTY", "0.1", "5.0", "E-mini Russell 2000", "CME"),
	contract("M2K", "0.1", "0.5", "Micro E-mini Russell 2000", "CME"),
	contract("EMD", "0.1", "10.0", "E-mini S&P MidCap 400", "CME"),
	contract("NKD", "5.0", "25.0", "Nikkei 225 (USD)", "CME"),
	contract("MNK", "5.0", "2.5", "Micro Nikkei (USD)", "CME"),

	// fx
	contract("6A", "0.00005", "5.0", "Australian Dollar", "CME"),
	contract("6B", "0.0001", "6.25", "British Pound", "CME"),
	contract("6C", "0.00005", "5.0", "Canadian Dollar", "CME"),
	contract("6E", "0.00005", "6.25", "Euro FX", "CME"),
	contract("6J", "0.0000005", "6.25", "Japanese Yen", "CME"),
	contract("6N", "0.00005", "5.0", "New Zealand Dollar", "CME"),
	contract("6S", "0.0001", "12.5", "Swiss Franc", "CME"),
	contract("E7", "0.0001", "6.25", "E-mini Euro FX", "CME"),
	contract("J7", "0.000001", "6.25", "E-mini Japanese Yen", "CME"),
	contract("M6A", "0.0001", "1.0", "Micro AUD/USD", "CME"),
	contract("M6B", "0.0001", "0.625", "Micro GBP/USD", "CME"),
	contract("MCD", "0.0001", "1.0", "Micro CAD/USD", "CME"),
	contract("M6E", "0.0001", "1.25", "Micro EUR/USD", "CME"),
	contract("MJY", "0.000001", "1.25", "Micro JPY/USD", "CME"),
	contract("MSF", "0.0001", "1.25", "Micro CHF/USD", "CME"),
	contract("DX", "0.005", "5.0", "U.S. Dollar Index", "ICEUS"),

	// energy
	contract("CL", "0.01", "10.0", "Crude Oil (WTI)", "NYMEX"),
	contract("QM", "0.025", "12.5", "E-mini Crude Oil", "NYMEX"),
	contract("MCL", "0.01", "1.0", "Micro WTI Crude Oil", "NYMEX"),
	contract("NG", "0.001", "10.0", "Natural Gas", "NYMEX"),
	contract("QG", "0.005", "12.5", "E-mini Natural Gas", "NYMEX"),
	contract("MNG", "0.001", "1.0", "Micro Henry Hub Natural Gas", "NYMEX"),
	contract("RB", "0.0001", "4.2", "RBOB Gasoline", "NYMEX"),
	contract("HO", "0.0001", "4.2", "Heating Oil", "NYMEX"),

	// metals
	contract("GC", "0.1", "10.0", "Gold", "COMEX"),
	contract("QO", "0.25", "12.5", "E-mini Gold", "COMEX"),
	contract("MGC", "0.1", "1.0", "Micro Gold", "COMEX"),
	contract("1OZ", "0.25", "0.25", "1-Ounce Gold", "COMEX"),
	contract("SI", "0.005", "25.0", "Silver", "COMEX"),
	contract("QI", "0.0125", "31.25", "E-mini Silver", "COMEX"),
	contract("SIL", "0.01", "10.0", "E-micro Silver", "COMEX"),
	contract("HG", "0.0005", "12.5", "Copper", "COMEX"),
	contract("QC", "0.002", "25.0", "E-mini Copper", "COMEX"),
	contract("MHG", "0.0005", "1.25", "Micro Copper", "COMEX"),
	contract("PL", "0.1", "5.0", "Platinum", "NYMEX"),

	// rates
	contract("ZB", "0.03125", "31.25", "US Treasury Bond (30Y)", "CBOT"),
	contract("UB", "0.03125", "31.25", "Ultra US Treasury Bond", "CBOT"),
	contract("ZN", "0.015625", "15.625", "10-Year US Treasury Note", "CBOT"),
	contract("TN", "0.03125", "15.625", "Ultra 10-Year US Treasury Note", "CBOT"),
	contract("ZF", "0.0078125", "7.8125", "5-Year US Treasury Note", "CBOT"),
	contract("ZT", "0.0078125", "15.625", "2-Year US Treasury Note", "CBOT"),
	contract("Z3N", "0.0078125", "15.625", "3-Year US Treasury Note", "CBOT"),
	contract("GE", "0.01", "25.0", "Eurodollar", "CME"),
	contract("ZQ", "0.005", "20.835", "30-Day Federal Funds", "CBOT"),
	contract("30YY", "0.1", "1.0", "Micro 30-Year Yield", "CBOT"),
	contract("10YY", "0.1", "1.0", "Micro 10-Year Yield", "CBOT"),
	contract("5YY", "0.1", "1.0", "Micro 5-Year Yield", "CBOT"),
	contract("2YY", "0.1", "1.0", "Micro 2-Year Yield", "CBOT"),
	contract("MWNA", "0.03125", "3.125", "Micro Ultra US Treasury Bond", "CBOT"),
	contract("MTN", "0.015625", "1.5625", "Micro Ultra 10-Year US Treasury Note", "CBOT"),

	// grains
	contract("ZC", "0.0025", "12.5", "Corn", "CBOT"),
	contract("XC", "0.00125", "1.25", "Mini Corn", "CBOT"),
	contract("MZC", "0.005", "2.5", "Micro Corn", "CBOT"),
	contract("ZW", "0.0025", "12.5", "Chicago SRW Wheat", "CBOT"),
	contract("XW", "0.00125", "1.25", "Mini Chicago SRW Wheat", "CBOT"),
	contract("MZW", "0.005", "2.5", "Micro Wheat", "CBOT"),
	contract("ZS", "0.0025", "12.5", "Soybeans", "CBOT"),
	contract("XK", "0.00125", "1.25", "Mini Soybeans", "CBOT"),
	contract("MZS", "0.005", "2.5", "Micro Soybeans", "CBOT"),
	contract("ZL", "0.0001", "6.0", "Soybean Oil", "CBOT"),
	contract("MZL", "0.02", "1.2", "Micro Soybean Oil", "CBOT"),
	contract("ZM", "0.1", "10.0", "Soybean Meal", "CBOT"),
	contract("MZM", "0.2", "2.0", "Micro Soybean Meal", "CBOT"),
	contract("ZO", "0.0025", "12.5", "Oats", "CBOT"),
	contract("ZR", "0.005", "10.0", "Rough Rice", "CBOT"),

	// softs
	contract("DC", "0.01", "20.0", "Class III Milk", "CME"),
	contract("LBS", "0.5", "13.75", "Lumber", "CME"),
	contract("CC", "1.0", "10.0", "Cocoa", "ICEUS"),
	contract("CT", "0.0001", "5.0", "Cotton", "ICEUS"),
	contract("KC", "0.0005", "18.75", "Coffee", "ICEUS"),
	contract("OJ", "0.0005", "7.5", "Orange Juice", "ICEUS"),
	contract("SB", "0.0001", "11.2", "Sugar #11", "ICEUS"),

	// meats
	contract("GF", "0.00025", "12.5", "Feeder Cattle", "CME"),
	contract("HE", "0.00025", "10.0", "Lean Hogs", "CME"),
	contract("LE", "0.00025", "10.0", "Live Cattle", "CME"),

	// crypto
	contract("BTC", "5.0", "25.0", "Bitcoin Futures", "CME"),
	contract("MBT", "5.0", "0.5", "Micro Bitcoin Futures", "CME"),
	contract("ETH", "0.5", "25.0", "Ether Futures", "CME"),
	contract("MET", "0.5", "0.05", "Micro Ether Futures", "CME"),
)
