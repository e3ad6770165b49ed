package decoder

import "fmt"

// Team is the constructor id. Code 52 is not assigned.
type Team uint8

const (
	TeamMercedes                Team = 0
	TeamFerrari                 Team = 1
	TeamRedBullRacing           Team = 2
	TeamWilliams                Team = 3
	TeamRacingPoint             Team = 4
	TeamRenault                 Team = 5
	TeamAlphaTauri              Team = 6
	TeamHaas                    Team = 7
	TeamMcLaren                 Team = 8
	TeamAlfaRomeo               Team = 9
	TeamMcLaren1988             Team = 10
	TeamMcLaren1991             Team = 11
	TeamWilliams1992            Team = 12
	TeamFerrari1995             Team = 13
	TeamWilliams1996            Team = 14
	TeamMcLaren1998             Team = 15
	TeamFerrari2002             Team = 16
	TeamFerrari2004             Team = 17
	TeamRenault2006             Team = 18
	TeamFerrari2007             Team = 19
	TeamMcLaren2008             Team = 20
	TeamRedBull2010             Team = 21
	TeamFerrari1976             Team = 22
	TeamARTGrandPrix            Team = 23
	TeamCamposVexatecRacing     Team = 24
	TeamCarlin                  Team = 25
	TeamCharouzRacingSystem     Team = 26
	TeamDAMS                    Team = 27
	TeamRussianTime             Team = 28
	TeamMPMotorsport            Team = 29
	TeamPertamina               Team = 30
	TeamMcLaren1990             Team = 31
	TeamTrident                 Team = 32
	TeamBWTArden                Team = 33
	TeamMcLaren1976             Team = 34
	TeamLotus1972               Team = 35
	TeamFerrari1979             Team = 36
	TeamMcLaren1982             Team = 37
	TeamWilliams2003            Team = 38
	TeamBrawn2009               Team = 39
	TeamLotus1978               Team = 40
	TeamF1GenericCar            Team = 41
	TeamArtGP2019               Team = 42
	TeamCampos2019              Team = 43
	TeamCarlin2019              Team = 44
	TeamSauberJuniorCharouz2019 Team = 45
	TeamDams2019                Team = 46
	TeamUniVirtuosi2019         Team = 47
	TeamMPMotorsport2019        Team = 48
	TeamPrema2019               Team = 49
	TeamTrident2019             Team = 50
	TeamArden2019               Team = 51
	TeamBenetton1994            Team = 53
	TeamBenetton1995            Team = 54
	TeamFerrari2000             Team = 55
	TeamJordan1991              Team = 56
	TeamMyTeam                  Team = 255
)

var teamNames = map[Team]string{
	TeamMercedes:                "mercedes",
	TeamFerrari:                 "ferrari",
	TeamRedBullRacing:           "red_bull_racing",
	TeamWilliams:                "williams",
	TeamRacingPoint:             "racing_point",
	TeamRenault:                 "renault",
	TeamAlphaTauri:              "alpha_tauri",
	TeamHaas:                    "haas",
	TeamMcLaren:                 "mclaren",
	TeamAlfaRomeo:               "alfa_romeo",
	TeamMcLaren1988:             "mclaren_1988",
	TeamMcLaren1991:             "mclaren_1991",
	TeamWilliams1992:            "williams_1992",
	TeamFerrari1995:             "ferrari_1995",
	TeamWilliams1996:            "williams_1996",
	TeamMcLaren1998:             "mclaren_1998",
	TeamFerrari2002:             "ferrari_2002",
	TeamFerrari2004:             "ferrari_2004",
	TeamRenault2006:             "renault_2006",
	TeamFerrari2007:             "ferrari_2007",
	TeamMcLaren2008:             "mclaren_2008",
	TeamRedBull2010:             "red_bull_2010",
	TeamFerrari1976:             "ferrari_1976",
	TeamARTGrandPrix:            "art_grand_prix",
	TeamCamposVexatecRacing:     "campos_vexatec_racing",
	TeamCarlin:                  "carlin",
	TeamCharouzRacingSystem:     "charouz_racing_system",
	TeamDAMS:                    "dams",
	TeamRussianTime:             "russian_time",
	TeamMPMotorsport:            "mp_motorsport",
	TeamPertamina:               "pertamina",
	TeamMcLaren1990:             "mclaren_1990",
	TeamTrident:                 "trident",
	TeamBWTArden:                "bwt_arden",
	TeamMcLaren1976:             "mclaren_1976",
	TeamLotus1972:               "lotus_1972",
	TeamFerrari1979:             "ferrari_1979",
	TeamMcLaren1982:             "mclaren_1982",
	TeamWilliams2003:            "williams_2003",
	TeamBrawn2009:               "brawn_2009",
	TeamLotus1978:               "lotus_1978",
	TeamF1GenericCar:            "f_1generic_car",
	TeamArtGP2019:               "art_gp_2019",
	TeamCampos2019:              "campos_2019",
	TeamCarlin2019:              "carlin_2019",
	TeamSauberJuniorCharouz2019: "sauber_junior_charouz_2019",
	TeamDams2019:                "dams_2019",
	TeamUniVirtuosi2019:         "uni_virtuosi_2019",
	TeamMPMotorsport2019:        "mp_motorsport_2019",
	TeamPrema2019:               "prema_2019",
	TeamTrident2019:             "trident_2019",
	TeamArden2019:               "arden_2019",
	TeamBenetton1994:            "benetton_1994",
	TeamBenetton1995:            "benetton_1995",
	TeamFerrari2000:             "ferrari_2000",
	TeamJordan1991:              "jordan_1991",
	TeamMyTeam:                  "my_team",
}

func parseTeam(c uint8) (Team, bool) {
	_, ok := teamNames[Team(c)]
	return Team(c), ok
}

func (t Team) String() string {
	if name, ok := teamNames[t]; ok {
		return name
	}
	return fmt.Sprintf("team(%d)", uint8(t))
}
func (t Team) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Driver is the driver id. Every code from 100 upwards is a human player
// and decodes to DriverPlayer.
type Driver uint8

const (
	DriverCarlosSainz         Driver = 0
	DriverDaniilKvyat         Driver = 1
	DriverDanielRicciardo     Driver = 2
	DriverKimiRaikkonen       Driver = 6
	DriverLewisHamilton       Driver = 7
	DriverMaxVerstappen       Driver = 9
	DriverNicoHulkenburg      Driver = 10
	DriverKevinMagnussen      Driver = 11
	DriverRomainGrosjean      Driver = 12
	DriverSebastianVettel     Driver = 13
	DriverSergioPerez         Driver = 14
	DriverValtteriBottas      Driver = 15
	DriverEstebanOcon         Driver = 17
	DriverLanceStroll         Driver = 19
	DriverArronBarnes         Driver = 20
	DriverMartinGiles         Driver = 21
	DriverAlexMurray          Driver = 22
	DriverLucasRoth           Driver = 23
	DriverIgorCorreia         Driver = 24
	DriverSophieLevasseur     Driver = 25
	DriverJonasSchiffer       Driver = 26
	DriverAlainForest         Driver = 27
	DriverJayLetourneau       Driver = 28
	DriverEstoSaari           Driver = 29
	DriverYasarAtiyeh         Driver = 30
	DriverCallistoCalabresi   Driver = 31
	DriverNaotaIzum           Driver = 32
	DriverHowardClarke        Driver = 33
	DriverWilhelmKaufmann     Driver = 34
	DriverMarieLaursen        Driver = 35
	DriverFlavioNieves        Driver = 36
	DriverPeterBelousov       Driver = 37
	DriverKlimekMichalski     Driver = 38
	DriverSantiagoMoreno      Driver = 39
	DriverBenjaminCoppens     Driver = 40
	DriverNoahVisser          Driver = 41
	DriverGertWaldmuller      Driver = 42
	DriverJulianQuesada       Driver = 43
	DriverDanielJones         Driver = 44
	DriverArtemMarkelov       Driver = 45
	DriverTadasukeMakino      Driver = 46
	DriverSeanGelael          Driver = 47
	DriverNyckDeVries         Driver = 48
	DriverJackAitken          Driver = 49
	DriverGeorgeRussell       Driver = 50
	DriverMaximilianGunther   Driver = 51
	DriverNireiFukuzumi       Driver = 52
	DriverLucaGhiotto         Driver = 53
	DriverLandoNorris         Driver = 54
	DriverSergioSetteCamara   Driver = 55
	DriverLouisDeletraz       Driver = 56
	DriverAntonioFuoco        Driver = 57
	DriverCharlesLeclerc      Driver = 58
	DriverPierreGasly         Driver = 59
	DriverAlexanderAlbon      Driver = 62
	DriverNicholasLatifi      Driver = 63
	DriverDorianBoccolacci    Driver = 64
	DriverNikoKari            Driver = 65
	DriverRobertoMerhi        Driver = 66
	DriverArjunMaini          Driver = 67
	DriverAlessioLorandi      Driver = 68
	DriverRubenMeijer         Driver = 69
	DriverRashidNair          Driver = 70
	DriverJackTremblay        Driver = 71
	DriverAntonioGiovinazzi   Driver = 74
	DriverRobertKubica        Driver = 75
	DriverNobuharuMatsushita  Driver = 78
	DriverNikitaMazepin       Driver = 79
	DriverGuanyaZhou          Driver = 80
	DriverMickSchumacher      Driver = 81
	DriverCallumIlott         Driver = 82
	DriverJuanManuelCorrea    Driver = 83
	DriverJordanKing          Driver = 84
	DriverMahaveerRaghunathan Driver = 85
	DriverTatianaCalderon     Driver = 86
	DriverAnthoineHubert      Driver = 87
	DriverGuilianoAlesi       Driver = 88
	DriverRalphBoschung       Driver = 89
	DriverPlayer              Driver = 100
)

var driverNames = map[Driver]string{
	DriverCarlosSainz:         "carlos_sainz",
	DriverDaniilKvyat:         "daniil_kvyat",
	DriverDanielRicciardo:     "daniel_ricciardo",
	DriverKimiRaikkonen:       "kimi_raikkonen",
	DriverLewisHamilton:       "lewis_hamilton",
	DriverMaxVerstappen:       "max_verstappen",
	DriverNicoHulkenburg:      "nico_hulkenburg",
	DriverKevinMagnussen:      "kevin_magnussen",
	DriverRomainGrosjean:      "romain_grosjean",
	DriverSebastianVettel:     "sebastian_vettel",
	DriverSergioPerez:         "sergio_perez",
	DriverValtteriBottas:      "valtteri_bottas",
	DriverEstebanOcon:         "esteban_ocon",
	DriverLanceStroll:         "lance_stroll",
	DriverArronBarnes:         "arron_barnes",
	DriverMartinGiles:         "martin_giles",
	DriverAlexMurray:          "alex_murray",
	DriverLucasRoth:           "lucas_roth",
	DriverIgorCorreia:         "igor_correia",
	DriverSophieLevasseur:     "sophie_levasseur",
	DriverJonasSchiffer:       "jonas_schiffer",
	DriverAlainForest:         "alain_forest",
	DriverJayLetourneau:       "jay_letourneau",
	DriverEstoSaari:           "esto_saari",
	DriverYasarAtiyeh:         "yasar_atiyeh",
	DriverCallistoCalabresi:   "callisto_calabresi",
	DriverNaotaIzum:           "naota_izum",
	DriverHowardClarke:        "howard_clarke",
	DriverWilhelmKaufmann:     "wilhelm_kaufmann",
	DriverMarieLaursen:        "marie_laursen",
	DriverFlavioNieves:        "flavio_nieves",
	DriverPeterBelousov:       "peter_belousov",
	DriverKlimekMichalski:     "klimek_michalski",
	DriverSantiagoMoreno:      "santiago_moreno",
	DriverBenjaminCoppens:     "benjamin_coppens",
	DriverNoahVisser:          "noah_visser",
	DriverGertWaldmuller:      "gert_waldmuller",
	DriverJulianQuesada:       "julian_quesada",
	DriverDanielJones:         "daniel_jones",
	DriverArtemMarkelov:       "artem_markelov",
	DriverTadasukeMakino:      "tadasuke_makino",
	DriverSeanGelael:          "sean_gelael",
	DriverNyckDeVries:         "nyck_de_vries",
	DriverJackAitken:          "jack_aitken",
	DriverGeorgeRussell:       "george_russell",
	DriverMaximilianGunther:   "maximilian_gunther",
	DriverNireiFukuzumi:       "nirei_fukuzumi",
	DriverLucaGhiotto:         "luca_ghiotto",
	DriverLandoNorris:         "lando_norris",
	DriverSergioSetteCamara:   "sergio_sette_camara",
	DriverLouisDeletraz:       "louis_deletraz",
	DriverAntonioFuoco:        "antonio_fuoco",
	DriverCharlesLeclerc:      "charles_leclerc",
	DriverPierreGasly:         "pierre_gasly",
	DriverAlexanderAlbon:      "alexander_albon",
	DriverNicholasLatifi:      "nicholas_latifi",
	DriverDorianBoccolacci:    "dorian_boccolacci",
	DriverNikoKari:            "niko_kari",
	DriverRobertoMerhi:        "roberto_merhi",
	DriverArjunMaini:          "arjun_maini",
	DriverAlessioLorandi:      "alessio_lorandi",
	DriverRubenMeijer:         "ruben_meijer",
	DriverRashidNair:          "rashid_nair",
	DriverJackTremblay:        "jack_tremblay",
	DriverAntonioGiovinazzi:   "antonio_giovinazzi",
	DriverRobertKubica:        "robert_kubica",
	DriverNobuharuMatsushita:  "nobuharu_matsushita",
	DriverNikitaMazepin:       "nikita_mazepin",
	DriverGuanyaZhou:          "guanya_zhou",
	DriverMickSchumacher:      "mick_schumacher",
	DriverCallumIlott:         "callum_ilott",
	DriverJuanManuelCorrea:    "juan_manuel_correa",
	DriverJordanKing:          "jordan_king",
	DriverMahaveerRaghunathan: "mahaveer_raghunathan",
	DriverTatianaCalderon:     "tatiana_calderon",
	DriverAnthoineHubert:      "anthoine_hubert",
	DriverGuilianoAlesi:       "guiliano_alesi",
	DriverRalphBoschung:       "ralph_boschung",
	DriverPlayer:              "player",
}

func parseDriver(c uint8) (Driver, bool) {
	if c >= uint8(DriverPlayer) {
		return DriverPlayer, true
	}
	_, ok := driverNames[Driver(c)]
	return Driver(c), ok
}

func (d Driver) String() string {
	if name, ok := driverNames[d]; ok {
		return name
	}
	return fmt.Sprintf("driver(%d)", uint8(d))
}
func (d Driver) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Nationality is the driver nationality. Codes 0 and 255 both decode to
// NationalityInvalid.
type Nationality uint8

const (
	NationalityInvalid       Nationality = 0
	NationalityAmerican      Nationality = 1
	NationalityArgentinean   Nationality = 2
	NationalityAustralian    Nationality = 3
	NationalityAustrian      Nationality = 4
	NationalityAzerbaijani   Nationality = 5
	NationalityBahraini      Nationality = 6
	NationalityBelgian       Nationality = 7
	NationalityBolivian      Nationality = 8
	NationalityBrazilian     Nationality = 9
	NationalityBritish       Nationality = 10
	NationalityBulgarian     Nationality = 11
	NationalityCameroonian   Nationality = 12
	NationalityCanadian      Nationality = 13
	NationalityChilean       Nationality = 14
	NationalityChinese       Nationality = 15
	NationalityColombian     Nationality = 16
	NationalityCostaRican    Nationality = 17
	NationalityCroatian      Nationality = 18
	NationalityCypriot       Nationality = 19
	NationalityCzech         Nationality = 20
	NationalityDanish        Nationality = 21
	NationalityDutch         Nationality = 22
	NationalityEcuadorian    Nationality = 23
	NationalityEnglish       Nationality = 24
	NationalityEmirian       Nationality = 25
	NationalityEstonian      Nationality = 26
	NationalityFinnish       Nationality = 27
	NationalityFrench        Nationality = 28
	NationalityGerman        Nationality = 29
	NationalityGhanaian      Nationality = 30
	NationalityGreek         Nationality = 31
	NationalityGuatemalan    Nationality = 32
	NationalityHonduran      Nationality = 33
	NationalityHongKonger    Nationality = 34
	NationalityHungarian     Nationality = 35
	NationalityIcelander     Nationality = 36
	NationalityIndian        Nationality = 37
	NationalityIndonesian    Nationality = 38
	NationalityIrish         Nationality = 39
	NationalityIsraeli       Nationality = 40
	NationalityItalian       Nationality = 41
	NationalityJamaican      Nationality = 42
	NationalityJapanese      Nationality = 43
	NationalityJordanian     Nationality = 44
	NationalityKuwaiti       Nationality = 45
	NationalityLatvian       Nationality = 46
	NationalityLebanese      Nationality = 47
	NationalityLithuanian    Nationality = 48
	NationalityLuxembourger  Nationality = 49
	NationalityMalaysian     Nationality = 50
	NationalityMaltese       Nationality = 51
	NationalityMexican       Nationality = 52
	NationalityMonegasque    Nationality = 53
	NationalityNewZealander  Nationality = 54
	NationalityNicaraguan    Nationality = 55
	NationalityNorthKorean   Nationality = 56
	NationalityNorthernIrish Nationality = 57
	NationalityNorwegian     Nationality = 58
	NationalityOmani         Nationality = 59
	NationalityPakistani     Nationality = 60
	NationalityPanamanian    Nationality = 61
	NationalityParaguayan    Nationality = 62
	NationalityPeruvian      Nationality = 63
	NationalityPolish        Nationality = 64
	NationalityPortuguese    Nationality = 65
	NationalityQatari        Nationality = 66
	NationalityRomanian      Nationality = 67
	NationalityRussian       Nationality = 68
	NationalitySalvadoran    Nationality = 69
	NationalitySaudi         Nationality = 70
	NationalityScottish      Nationality = 71
	NationalitySerbian       Nationality = 72
	NationalitySingaporean   Nationality = 73
	NationalitySlovakian     Nationality = 74
	NationalitySlovenian     Nationality = 75
	NationalitySouthKorean   Nationality = 76
	NationalitySouthAfrican  Nationality = 77
	NationalitySpanish       Nationality = 78
	NationalitySwedish       Nationality = 79
	NationalitySwiss         Nationality = 80
	NationalityThai          Nationality = 81
	NationalityTurkish       Nationality = 82
	NationalityUruguayan     Nationality = 83
	NationalityUkrainian     Nationality = 84
	NationalityVenezuelan    Nationality = 85
	NationalityWelsh         Nationality = 86
	NationalityBarbadian     Nationality = 87
	NationalityVietnamese    Nationality = 88
)

var nationalityNames = map[Nationality]string{
	NationalityInvalid:       "invalid",
	NationalityAmerican:      "american",
	NationalityArgentinean:   "argentinean",
	NationalityAustralian:    "australian",
	NationalityAustrian:      "austrian",
	NationalityAzerbaijani:   "azerbaijani",
	NationalityBahraini:      "bahraini",
	NationalityBelgian:       "belgian",
	NationalityBolivian:      "bolivian",
	NationalityBrazilian:     "brazilian",
	NationalityBritish:       "british",
	NationalityBulgarian:     "bulgarian",
	NationalityCameroonian:   "cameroonian",
	NationalityCanadian:      "canadian",
	NationalityChilean:       "chilean",
	NationalityChinese:       "chinese",
	NationalityColombian:     "colombian",
	NationalityCostaRican:    "costa_rican",
	NationalityCroatian:      "croatian",
	NationalityCypriot:       "cypriot",
	NationalityCzech:         "czech",
	NationalityDanish:        "danish",
	NationalityDutch:         "dutch",
	NationalityEcuadorian:    "ecuadorian",
	NationalityEnglish:       "english",
	NationalityEmirian:       "emirian",
	NationalityEstonian:      "estonian",
	NationalityFinnish:       "finnish",
	NationalityFrench:        "french",
	NationalityGerman:        "german",
	NationalityGhanaian:      "ghanaian",
	NationalityGreek:         "greek",
	NationalityGuatemalan:    "guatemalan",
	NationalityHonduran:      "honduran",
	NationalityHongKonger:    "hong_konger",
	NationalityHungarian:     "hungarian",
	NationalityIcelander:     "icelander",
	NationalityIndian:        "indian",
	NationalityIndonesian:    "indonesian",
	NationalityIrish:         "irish",
	NationalityIsraeli:       "israeli",
	NationalityItalian:       "italian",
	NationalityJamaican:      "jamaican",
	NationalityJapanese:      "japanese",
	NationalityJordanian:     "jordanian",
	NationalityKuwaiti:       "kuwaiti",
	NationalityLatvian:       "latvian",
	NationalityLebanese:      "lebanese",
	NationalityLithuanian:    "lithuanian",
	NationalityLuxembourger:  "luxembourger",
	NationalityMalaysian:     "malaysian",
	NationalityMaltese:       "maltese",
	NationalityMexican:       "mexican",
	NationalityMonegasque:    "monegasque",
	NationalityNewZealander:  "new_zealander",
	NationalityNicaraguan:    "nicaraguan",
	NationalityNorthKorean:   "north_korean",
	NationalityNorthernIrish: "northern_irish",
	NationalityNorwegian:     "norwegian",
	NationalityOmani:         "omani",
	NationalityPakistani:     "pakistani",
	NationalityPanamanian:    "panamanian",
	NationalityParaguayan:    "paraguayan",
	NationalityPeruvian:      "peruvian",
	NationalityPolish:        "polish",
	NationalityPortuguese:    "portuguese",
	NationalityQatari:        "qatari",
	NationalityRomanian:      "romanian",
	NationalityRussian:       "russian",
	NationalitySalvadoran:    "salvadoran",
	NationalitySaudi:         "saudi",
	NationalityScottish:      "scottish",
	NationalitySerbian:       "serbian",
	NationalitySingaporean:   "singaporean",
	NationalitySlovakian:     "slovakian",
	NationalitySlovenian:     "slovenian",
	NationalitySouthKorean:   "south_korean",
	NationalitySouthAfrican:  "south_african",
	NationalitySpanish:       "spanish",
	NationalitySwedish:       "swedish",
	NationalitySwiss:         "swiss",
	NationalityThai:          "thai",
	NationalityTurkish:       "turkish",
	NationalityUruguayan:     "uruguayan",
	NationalityUkrainian:     "ukrainian",
	NationalityVenezuelan:    "venezuelan",
	NationalityWelsh:         "welsh",
	NationalityBarbadian:     "barbadian",
	NationalityVietnamese:    "vietnamese",
}

func parseNationality(c uint8) (Nationality, bool) {
	if c == 255 {
		return NationalityInvalid, true
	}
	_, ok := nationalityNames[Nationality(c)]
	return Nationality(c), ok
}

func (n Nationality) String() string {
	if name, ok := nationalityNames[n]; ok {
		return name
	}
	return fmt.Sprintf("nationality(%d)", uint8(n))
}
func (n Nationality) MarshalText() ([]byte, error) { return []byte(n.String()), nil }
