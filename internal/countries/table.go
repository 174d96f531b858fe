package countries

// officialNames maps ISO 3166 official short names (plus the World Bank's
// spelling where it differs) to alpha-3 codes. Keys are folded before use,
// so capitalization and punctuation here are cosmetic.
var officialNames = map[string]string{
	"Afghanistan":                    "AFG",
	"Albania":                        "ALB",
	"Algeria":                        "DZA",
	"Andorra":                        "AND",
	"Angola":                         "AGO",
	"Antigua and Barbuda":            "ATG",
	"Argentina":                      "ARG",
	"Armenia":                        "ARM",
	"Australia":                      "AUS",
	"Austria":                        "AUT",
	"Azerbaijan":                     "AZE",
	"Bahamas, The":                   "BHS",
	"Bahrain":                        "BHR",
	"Bangladesh":                     "BGD",
	"Barbados":                       "BRB",
	"Belarus":                        "BLR",
	"Belgium":                        "BEL",
	"Belize":                         "BLZ",
	"Benin":                          "BEN",
	"Bhutan":                         "BTN",
	"Bolivia":                        "BOL",
	"Bosnia and Herzegovina":         "BIH",
	"Botswana":                       "BWA",
	"Brazil":                         "BRA",
	"Brunei Darussalam":              "BRN",
	"Bulgaria":                       "BGR",
	"Burkina Faso":                   "BFA",
	"Burundi":                        "BDI",
	"Cabo Verde":                     "CPV",
	"Cambodia":                       "KHM",
	"Cameroon":                       "CMR",
	"Canada":                         "CAN",
	"Central African Republic":       "CAF",
	"Chad":                           "TCD",
	"Chile":                          "CHL",
	"China":                          "CHN",
	"Colombia":                       "COL",
	"Comoros":                        "COM",
	"Congo, Dem. Rep.":               "COD",
	"Congo, Rep.":                    "COG",
	"Costa Rica":                     "CRI",
	"Cote d'Ivoire":                  "CIV",
	"Croatia":                        "HRV",
	"Cuba":                           "CUB",
	"Cyprus":                         "CYP",
	"Czechia":                        "CZE",
	"Denmark":                        "DNK",
	"Djibouti":                       "DJI",
	"Dominica":                       "DMA",
	"Dominican Republic":             "DOM",
	"Ecuador":                        "ECU",
	"Egypt, Arab Rep.":               "EGY",
	"El Salvador":                    "SLV",
	"Equatorial Guinea":              "GNQ",
	"Eritrea":                        "ERI",
	"Estonia":                        "EST",
	"Eswatini":                       "SWZ",
	"Ethiopia":                       "ETH",
	"Fiji":                           "FJI",
	"Finland":                        "FIN",
	"France":                         "FRA",
	"Gabon":                          "GAB",
	"Gambia, The":                    "GMB",
	"Georgia":                        "GEO",
	"Germany":                        "DEU",
	"Ghana":                          "GHA",
	"Greece":                         "GRC",
	"Grenada":                        "GRD",
	"Guatemala":                      "GTM",
	"Guinea":                         "GIN",
	"Guinea-Bissau":                  "GNB",
	"Guyana":                         "GUY",
	"Haiti":                          "HTI",
	"Honduras":                       "HND",
	"Hungary":                        "HUN",
	"Iceland":                        "ISL",
	"India":                          "IND",
	"Indonesia":                      "IDN",
	"Iran, Islamic Rep.":             "IRN",
	"Iraq":                           "IRQ",
	"Ireland":                        "IRL",
	"Israel":                         "ISR",
	"Italy":                          "ITA",
	"Jamaica":                        "JAM",
	"Japan":                          "JPN",
	"Jordan":                         "JOR",
	"Kazakhstan":                     "KAZ",
	"Kenya":                          "KEN",
	"Kiribati":                       "KIR",
	"Korea, Dem. People's Rep.":      "PRK",
	"Korea, Rep.":                    "KOR",
	"Kuwait":                         "KWT",
	"Kyrgyz Republic":                "KGZ",
	"Lao PDR":                        "LAO",
	"Latvia":                         "LVA",
	"Lebanon":                        "LBN",
	"Lesotho":                        "LSO",
	"Liberia":                        "LBR",
	"Libya":                          "LBY",
	"Liechtenstein":                  "LIE",
	"Lithuania":                      "LTU",
	"Luxembourg":                     "LUX",
	"Madagascar":                     "MDG",
	"Malawi":                         "MWI",
	"Malaysia":                       "MYS",
	"Maldives":                       "MDV",
	"Mali":                           "MLI",
	"Malta":                          "MLT",
	"Marshall Islands":               "MHL",
	"Mauritania":                     "MRT",
	"Mauritius":                      "MUS",
	"Mexico":                         "MEX",
	"Micronesia, Fed. Sts.":          "FSM",
	"Moldova":                        "MDA",
	"Monaco":                         "MCO",
	"Mongolia":                       "MNG",
	"Montenegro":                     "MNE",
	"Morocco":                        "MAR",
	"Mozambique":                     "MOZ",
	"Myanmar":                        "MMR",
	"Namibia":                        "NAM",
	"Nauru":                          "NRU",
	"Nepal":                          "NPL",
	"Netherlands":                    "NLD",
	"New Zealand":                    "NZL",
	"Nicaragua":                      "NIC",
	"Niger":                          "NER",
	"Nigeria":                        "NGA",
	"North Macedonia":                "MKD",
	"Norway":                         "NOR",
	"Oman":                           "OMN",
	"Pakistan":                       "PAK",
	"Palau":                          "PLW",
	"Panama":                         "PAN",
	"Papua New Guinea":               "PNG",
	"Paraguay":                       "PRY",
	"Peru":                           "PER",
	"Philippines":                    "PHL",
	"Poland":                         "POL",
	"Portugal":                       "PRT",
	"Qatar":                          "QAT",
	"Romania":                        "ROU",
	"Russian Federation":             "RUS",
	"Rwanda":                         "RWA",
	"Samoa":                          "WSM",
	"San Marino":                     "SMR",
	"Sao Tome and Principe":          "STP",
	"Saudi Arabia":                   "SAU",
	"Senegal":                        "SEN",
	"Serbia":                         "SRB",
	"Seychelles":                     "SYC",
	"Sierra Leone":                   "SLE",
	"Singapore":                      "SGP",
	"Slovak Republic":                "SVK",
	"Slovenia":                       "SVN",
	"Solomon Islands":                "SLB",
	"Somalia":                        "SOM",
	"South Africa":                   "ZAF",
	"South Sudan":                    "SSD",
	"Spain":                          "ESP",
	"Sri Lanka":                      "LKA",
	"St. Kitts and Nevis":            "KNA",
	"St. Lucia":                      "LCA",
	"St. Vincent and the Grenadines": "VCT",
	"Sudan":                          "SDN",
	"Suriname":                       "SUR",
	"Sweden":                         "SWE",
	"Switzerland":                    "CHE",
	"Syrian Arab Republic":           "SYR",
	"Tajikistan":                     "TJK",
	"Tanzania":                       "TZA",
	"Thailand":                       "THA",
	"Timor-Leste":                    "TLS",
	"Togo":                           "TGO",
	"Tonga":                          "TON",
	"Trinidad and Tobago":            "TTO",
	"Tunisia":                        "TUN",
	"Turkiye":                        "TUR",
	"Turkmenistan":                   "TKM",
	"Tuvalu":                         "TUV",
	"Uganda":                         "UGA",
	"Ukraine":                        "UKR",
	"United Arab Emirates":           "ARE",
	"United Kingdom":                 "GBR",
	"United States":                  "USA",
	"Uruguay":                        "URY",
	"Uzbekistan":                     "UZB",
	"Vanuatu":                        "VUT",
	"Venezuela, RB":                  "VEN",
	"Viet Nam":                       "VNM",
	"Yemen, Rep.":                    "YEM",
	"Zambia":                         "ZMB",
	"Zimbabwe":                       "ZWE",
}

// commonAliases covers spellings seen in immunization source files that the
// official table misses. Same folding rules as officialNames.
var commonAliases = map[string]string{
	"Bahamas":                                              "BHS",
	"Bolivia (Plurinational State of)":                     "BOL",
	"Brunei":                                               "BRN",
	"Burma":                                                "MMR",
	"Cape Verde":                                           "CPV",
	"Czech Republic":                                       "CZE",
	"Democratic People's Republic of Korea":                "PRK",
	"Democratic Republic of the Congo":                     "COD",
	"Egypt":                                                "EGY",
	"Gambia":                                               "GMB",
	"Great Britain":                                        "GBR",
	"Hong Kong SAR, China":                                 "HKG",
	"Iran":                                                 "IRN",
	"Iran (Islamic Republic of)":                           "IRN",
	"Ivory Coast":                                          "CIV",
	"Kyrgyzstan":                                           "KGZ",
	"Lao People's Democratic Republic":                     "LAO",
	"Laos":                                                 "LAO",
	"Macedonia":                                            "MKD",
	"Micronesia (Federated States of)":                     "FSM",
	"North Korea":                                          "PRK",
	"Republic of Korea":                                    "KOR",
	"Republic of Moldova":                                  "MDA",
	"Republic of the Congo":                                "COG",
	"Russia":                                               "RUS",
	"Slovakia":                                             "SVK",
	"South Korea":                                          "KOR",
	"Swaziland":                                            "SWZ",
	"Syria":                                                "SYR",
	"Turkey":                                               "TUR",
	"United Kingdom of Great Britain and Northern Ireland": "GBR",
	"United Republic of Tanzania":                          "TZA",
	"United States of America":                             "USA",
	"Venezuela":                                            "VEN",
	"Venezuela (Bolivarian Republic of)":                   "VEN",
	"Vietnam":                                              "VNM",
	"Yemen":                                                "YEM",
}
