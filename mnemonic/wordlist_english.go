// Package mnemonic provides the 1626-word English wordlist used to encode
// a 32-byte wallet seed as 25 space-separated words, per the wordlist-state
// design note: a compile-time constant table with an O(1) companion index
// map built at startup.
package mnemonic

var englishWords = [1626]string{
	"babreeal", "baikuive", "baizibroual", "baskoaless", "batruness", "beacoable", "beada", "beaquieful",
	"beascai", "beasnual", "beibloution", "biblaing", "biesneafudom", "bifluable", "bijaial", "bijubrious",
	"bisceeive", "biskuseeous", "blaheadom", "blaiflooness", "blapogeaful", "blatoual", "bleadreaable", "blealeation",
	"blealuous", "bleareaable", "blecleefeeer", "bleechoual", "bleedual", "bleesieer", "bleifroaful", "blemeshetion",
	"blequaer", "bliejafu", "bliepreaal", "blieskaed", "bliethued", "bligial", "bliniedaable", "bliqueadom",
	"bliroo", "blisnutuer", "bloacruly", "bloapiexaful", "bloasleful", "bloaspouplus", "bloatoaclual", "blohooboaal",
	"bloogloakea", "bloopriless", "blooskaily", "bloswealy", "blotrewees", "blougladom", "blubeaable", "blubraless",
	"blugeiful", "bluscougeas", "boacheal", "boacheiful", "boachoive", "boafleed", "boafleiment", "boafudes",
	"boagepluable", "boagliness", "boaloa", "boospieer", "boudrily", "brafruness", "braheaous", "braifuviive",
	"braizeeal", "brakascaer", "breachies", "breaflument", "breajoual", "breale", "breascoaable", "breetreing",
	"breetrily", "breeyeeful", "breinable", "bresnoaable", "breteesnoued", "briebeied", "briesciblaer", "brinisweily",
	"broachoos", "broafroaness", "broatreable", "brobreing", "brodrazoaity", "broogreiness", "broozigrie", "broquooskoly",
	"broshoquie", "broslaxa", "broudouer", "brounoal", "brousheixais", "brouskoos", "brouwaable", "brouxeeer",
	"bruheing", "brupaless", "budieed", "buflouer", "buyouity", "cagloodra", "caifridradom", "caigaiment",
	"caihoaity", "caskailess", "cateeed", "ceechaed", "ceecleed", "ceemiesnas", "ceeshuable", "ceeskooive",
	"ceesneiing", "ceezeaer", "ceeziity", "ceibiness", "ceifiesciive", "ceimispeas", "ceisnaibreal", "ceiwoodom",
	"ceneepraal", "cerodom", "cetheiyos", "cexocroament", "chaisneiful", "chaitrou", "chaskeaful", "cheatradom",
	"chedees", "cheemos", "cheibrual", "cheidreiment", "cheifrudom", "cheijaive", "cheilieness", "cheinedom",
	"cheisnafaier", "cheiyiquaial", "chemaness", "chethedouer", "chiehailess", "chiejiely", "chiepaisna", "chieveiive",
	"chikeaous", "chisneiless", "choaspoing", "chobaskeing", "choleition", "chooteive", "chootiskieed", "chosteaing",
	"choubreiment", "chougrieful", "chouqueier", "choxouly", "chugoufleeal", "ciecru", "ciequealess", "ciestas",
	"cimaidom", "cladament", "clagaial", "claifeaity", "claskoly", "claskoopreas", "cleadreive", "cleagleeness",
	"cleaqueeless", "clefroaive", "clegroution", "cleicleakus", "cleicleeity", "cleimaous", "cleinaer", "cleixoas",
	"clepeier", "clewuer", "cliepament", "cliesheeable", "cloaflooment", "cloamieer", "cloaslaness", "clomietroing",
	"clookoation", "cloostiedom", "cloubloed", "clouskes", "cloutroaable", "clufieness", "cluglaigloo", "clunutreiful",
	"coafuous", "coaglouness", "coaspoity", "coawoment", "cochaiment", "coneaous", "conieful", "coocoocleier",
	"coosnaous", "coowomaious", "coquuly", "corejous", "couganess", "coukument", "couslouity", "coutheiment",
	"crachajieal", "cragleeless", "craheaful", "craibeal", "craigailess", "craitaity", "craixoaity", "crakucreely",
	"creabrooity", "creagooful", "creajeeal", "creegous", "creslos", "crevustuly", "cribai", "cricrie",
	"criescaiive", "croacheiing", "croajaied", "croaxooer", "croche", "crogual", "croobriing", "croofieful",
	"croogleidom", "crosoation", "croufrouness", "crouscooxoas", "crousloudom", "crouyouless", "cruboation", "crugrier",
	"cruheacleaer", "crupoous", "cruqueive", "cruscament", "dacrooful", "dadicheiity", "dahasceiness", "daifais",
	"deageexeiful", "deazoaed", "deebroadom", "deehaivaiing", "deeshoous", "deesweefai", "deiqualess", "deiswoution",
	"deroobeadom", "dieleemieive", "diescisladom", "distaiswoing", "doathoive", "domution", "doojisnetion", "doovoual",
	"doproaing", "dougosnieful", "doutroaer", "drabaition", "draijial", "draineridom", "draiskeial", "draploobeful",
	"draplotion", "drasloer", "drasnieing", "drawieer", "dreapluless", "dreayeeness", "drebloable", "dreebraious",
	"dreedeness", "dreepleeer", "dreescaful", "dreesnouing", "dreetroous", "dreeyotion", "dreichainess", "dreichoaing",
	"drezeive", "drideaity", "driebriely", "driegliity", "driesaness", "driesweeed", "dripaloament", "driquiable",
	"droabluous", "droodrieful", "droojailess", "drootrahuous", "drosceidom", "droseiive", "droskotion", "droumeily",
	"droupipeous", "drozaly", "drublaiive", "drutreied", "druyodoudom", "dustadom", "dutroaer", "faibeaed",
	"faicleyeeive", "faiflanaial", "faihu", "faixeed", "fashushiely", "faspeedom", "feasnument", "feayuive",
	"fechotion", "feclieless", "feejeiless", "feekudeful", "feigraful", "feisceive", "feisoubraily", "fepaxailess",
	"fespiedom", "fiefoness", "filocheaive", "fipreaity", "fisleiroment", "fivooed", "fiyoual", "fiyouful",
	"flaijaneeer", "flaisluness", "flaisweiity", "fleaprieity", "fleasial", "fleatheeed", "fleclial", "fleefefuing",
	"fleesheeing", "fleesnoness", "flegrees", "fleidoament", "fleifrees", "fleihevouer", "flejoament", "fleswaidom",
	"flibleiable", "flibouing", "flibriluful", "flibrovoless", "fliewoaness", "fligruness", "flipliless", "floabroadom",
	"floatroaity", "floavetion", "floayouity", "floocroas", "floodriing", "flooneier", "flooqueiable", "floosweal",
	"flootouity", "flopeable", "floplaiity", "floroufedom", "flotroocely", "flowoceive", "flubletouing", "foagooous",
	"fodees", "fodeiless", "fodreaspoa", "fokeier", "foocealess", "foociing", "fooxoaer", "fougloous",
	"fowooluive", "frafleition", "fraicively", "fraiwition", "fraquedeidom", "frashoation", "fraswoed", "frebeness",
	"frebreeless", "freispouless", "freithouly", "freiwoation", "frenoaness", "freprous", "freskailess", "fretoly",
	"friegloed", "frienajaiity", "frienoual", "frietooness", "frishopuness", "frisnoacros", "froabluness", "froaciless",
	"froake", "froaplaiable", "froaspealess", "froaspuzoed", "froatament", "froawihaier", "froocaous", "froochouly",
	"froxocriness", "frusneifeous", "fulaiful", "gachedom", "gadredom", "gafraigoos", "gaicoument", "gaijooous",
	"gairoaspeaal", "gaiwiezuness", "gamouing", "gariebleive", "gasooless", "gayuive", "geadraiive", "geateeous",
	"gebrooous", "geedrooclei", "geefo", "geekaiity", "geepla", "geesnerieal", "geespees", "geifrooguity",
	"geijooless", "geispagaidom", "geiwaidom", "giebieness", "giegleation", "gieprealess", "giereaness", "giewoos",
	"gipoadom", "gipruity", "giwaless", "glaibroaer", "glaiceviness", "glaicroued", "glaiheeful", "glaireeful",
	"glaisciive", "glaskoment", "glavoxeous", "gleacraimus", "gleareation", "gleathaial", "gleatriement", "gleavoboa",
	"gleazieity", "gleecroual", "gleetoful", "gleiliity", "gleisliness", "gleisluive", "glesciegoo", "gliebleless",
	"gliefoos", "gliepeiity", "glietrieable", "gloakizi", "glocholess", "glofidom", "glogrea", "glooroajies",
	"glougued", "glouzeas", "glupeedes", "glureclooful", "gluskeeness", "gluswieive", "gluyisniable", "goaglious",
	"goamation", "goamoos", "goaxowailess", "godruity", "goopeeless", "gooswaiful", "gootriquuous", "gooxaikeidom",
	"graifrieer", "graigraable", "graigudeiing", "graihootion", "graikoatraer", "graipos", "graisliraful", "graisoaful",
	"graispual", "graleteiable", "greacrie", "greakooveeer", "greashopea", "greatiswoas", "gredu", "greedapooful",
	"greeflaier", "greeplaable", "grehaistied", "greilaiful", "greinetion", "greiscoa", "greithoadom", "greixoaed",
	"greizual", "grejeiment", "gretogai", "gretriement", "griefreeive", "griegrier", "grieleity", "grielidom",
	"griezeial", "grisneeing", "grivoclaive", "groachuable", "grofraier", "groofroo", "groohoive", "grooploodre",
	"grooshos", "grooskieheer", "grootrailess", "grooxoobloly", "groprouous", "grosnouable", "groubecution", "groufleiless",
	"grouskeedom", "grouspaial", "groutoful", "groutreely", "grouwei", "grovieed", "gruneifroaal", "grusweequai",
	"grutheaness", "gruthes", "guchoaous", "gunoutouous", "gusceatreity", "guskevetion", "guslaiable", "haifleaer",
	"haifoution", "haigrieness", "hainouing", "haistued", "hajealy", "heajeiing", "heajoaable", "heajoal",
	"heaskely", "hecea", "heecoas", "heejeeziful", "heepeepition", "heeski", "hefealeetion", "hefoer",
	"hegrieable", "heifemiely", "hemaiyaiive", "hibeetion", "hicholess", "hiefrus", "hiegroaquis", "hiesceis",
	"hieskee", "hieslos", "higuous", "hijeaal", "himobroaer", "hisceial", "hisnaing", "hoabrooment",
	"hoafreal", "hoapluer", "hograiceas", "honeaing", "honeeed", "hoobrition", "hoopraable", "hooskoive",
	"hooveis", "houlealy", "houskiable", "houslaity", "huclooed", "huheaing", "huhootion", "hulooquued",
	"humeaer", "humie", "hupreaheiity", "huquieness", "huslieive", "huzoascoaly", "jacrouity", "jaicukeaable",
	"jaimaheeity", "jaithuer", "janaibriable", "jaslutreeive", "jastoaed", "jeachoaity", "jeaseless", "jebreable",
	"jefliment", "jeikoution", "jeispious", "jeskeaable", "jethouless", "jiblozooable", "jicloaity", "jiegleal",
	"jiesee", "jigleifroing", "jigloo", "jisheafrodom", "jisnoaing", "jixegloaous", "jiyacraious", "joafeity",
	"joafooly", "joakoceely", "joasceitus", "jogloafrieed", "joochoaed", "joofaless", "jooliecres", "joretradom",
	"joufrailess", "jouspoment", "jucheeity", "juswoqueous", "kaidiity", "kaisceis", "kaislus", "kaistoslouly",
	"kaloution", "kasnoutoaly", "keamiecier", "keamislouing", "keathees", "keavooxadom", "kedaliely", "keegiment",
	"keekieer", "keenouless", "keethoive", "keeyoacrudom", "keihieous", "keiteaive", "keiyoazoas", "kekeedom",
	"kiesceition", "kifies", "kigleadom", "kileition", "kiplufrodom", "kisagloful", "kizealy", "koagleily",
	"koaskeely", "koawaidom", "kogrea", "kokas", "koodroument", "koomuly", "kooshes", "koosiemuer",
	"kooyaily", "kosciefleeer", "koucledom", "kuceaswoive", "kufriive", "kutieal", "laihees", "laixoed",
	"laplial", "lasteflument", "latries", "leadution", "leagloament", "leaploful", "leasceiing", "lebrooful",
	"leehuive", "leemeeable", "leenislouer", "leenogooness", "leesketion", "leesleely", "leesnieable", "leispeer",
	"lemea", "lepoution", "lepreeal", "liboaous", "lidoing", "liecheeive", "liemeflou", "liescupraied",
	"lieyiness", "loadrooing", "loafiing", "loafloayeeal", "loasweaed", "loavoapleily", "locoudom", "looveily",
	"lopleatheaer", "louglacrou", "louheyeaity", "lousnei", "lowieed", "lutheicrais", "luthoument", "maigliment",
	"maigoshaily", "maislieous", "maitroaable", "maixeely", "mamaistaful", "maskouful", "maswoagleous", "maswouswoful",
	"maxeekouous", "meascebloual", "meascied", "measieer", "meemierais", "meezedrudom", "meidriable", "meipreing",
	"meisciless", "meislued", "meistaness", "meisu", "meize", "methuthuful", "miebeiing", "mietreed",
	"mieyouxaiing", "minaiing", "miposwution", "miswaed", "miyodom", "moablieal", "moasnaed", "moawes",
	"moayeaal", "moazeswieal", "mobadom", "mochoous", "moneipea", "mooxoupliely", "moubeadaity", "mouvaious",
	"naclepeed", "naikaitooing", "naishoness", "naisloaless", "naisweiive", "namaimement", "napleetion", "naruity",
	"naxoness", "neabeaness", "neapleadeily", "neaselooing", "neecleaous", "neecleeity", "neepraial", "neetoudiing",
	"neigus", "neijeas", "neloodreeed", "neplis", "nepreis", "nequoaable", "nesexaied", "neweious",
	"niclibloaive", "nigreeity", "nispeeing", "nithiloity", "noaglupier", "noagoohaiity", "noaprieness", "noaquoal",
	"noaxoaive", "noayadais", "nooblaiive", "nooflaless", "noogloity", "noosicreiful", "nostivaity", "noufeful",
	"nouploheadom", "nouruhieity", "nouvaless", "nugrooer", "nujouing", "numiveied", "nupooous", "nushouslidom",
	"nusnooful", "pacreement", "paimooous", "paipri", "paizopreness", "patruly", "paveeing", "peafrelooive",
	"peastieless", "peastoed", "peaxooity", "peefleaing", "peefraily", "peescoceness", "peesweeless", "peiclucroer",
	"peiflacheer", "peiza", "pescouful", "piclution", "piedoablei", "pieslaive", "pieslies", "pifieable",
	"pireiquis", "plaikeiness", "plaiku", "plaiqueaal", "plaitheaal", "plakieness", "plapleaed", "plaspooless",
	"pleacheaity", "pleatoment", "pleeles", "pleesleier", "plefleful", "pleisceament", "pleisno", "pleistoed",
	"plenaal", "pleyoshoal", "plezopreness", "plibrostooer", "pliclacruity", "plieshecroas", "plikabouous", "ploadeless",
	"ploastooal", "plookuity", "plooquouer", "plootruful", "ploovai", "plosnament", "plospobes", "plospoment",
	"ploufaly", "ploustoaful", "pluswietion", "ponouity", "poodeation", "poonacreaive", "pooxaijeless", "poupaive",
	"pousoaxo", "prajooful", "prapleaal", "praruing", "prashuless", "preadreecoo", "preaqueeing", "preawiement",
	"preescooive", "preezou", "preiquoaless", "preisnietion", "prele", "premoaal", "priebeous", "priemooing",
	"prienouer", "prieskoaable", "priespoolee", "pripriedom", "prishiloaity", "pritrea", "proaquieable", "proochoution",
	"proocleous", "proodreity", "proohooed", "proowoogrily", "prooxual", "proudoahuive", "proukeer", "prousleed",
	"provoaly", "pruquameeed", "pruqueaity", "publaichuing", "pucresteous", "pucrious", "pugenuing", "puprogeeing",
	"puxeeed", "quabrailus", "quacoued", "quaifietion", "quailas", "quapeition", "quapuing", "quareeer",
	"queadaveer", "queaspeful", "quedraily", "queesheement", "quegroo", "queiploudom", "queisnijouly", "queispoation",
	"quelegriive", "queli", "quepixeive", "queswieful", "quibros", "quicrament", "quiegreier", "quietroaive",
	"quifleiment", "quimeebial", "quiskaiceer", "quistied", "quoagaskoful", "quoapleaing", "quogleeer", "quoliguing",
	"quoochiepai", "quoomaloal", "quooproo", "quosnoed", "quoturotion", "quoxuless", "quudious", "quutheedom",
	"rafruness", "raiyaroing", "rapluglooity", "raspoas", "reacleiswees", "reagoobroity", "reajee", "reavaiive",
	"reedreiing", "reeseskuable", "reiglaable", "reisaishudom", "replusteied", "richogleity", "riesneition", "riezoness",
	"rijiruive", "riraisnuful", "rirufroaity", "riskoaed", "roableaive", "roagoazeiity", "roahoous", "roaquealy",
	"roaquunei", "roasleeness", "roasoas", "roatrudom", "rogainess", "roomooity", "rooteaity", "rootraily",
	"roovishement", "roubeiful", "rouflooless", "roushaness", "rousteer", "routreewaal", "rouwition", "rouxieable",
	"ruproable", "ruqueapeaer", "ruvayouous", "sacuive", "sadrei", "saibreedom", "saihous", "saiwospieous",
	"sasnoseetion", "sawatrooable", "scafoaing", "scageeing", "scaibeableal", "scaikeflieed", "scaisnouable", "scaitaing",
	"scaiveable", "scasweaing", "scayewainess", "sceafroament", "sceakis", "scealeely", "sceaquued", "sceaseadom",
	"sceayoment", "sceemuloness", "sceexual", "sceflubrodom", "sceichoujoos", "sceidooal", "sceisciing", "scejareeed",
	"scenoa", "scesaiment", "sciclooless", "sciemeedom", "scigrairieer", "sciplibluer", "sciteer", "sciviement",
	"scoagleiness", "scoapreement", "scoasceaable", "scoaskeaer", "scoobement", "scopruness", "scorooing", "scoucreement",
	"scoudouous", "scounaied", "scoxais", "scuwouous", "seabriable", "seaprieed", "seasta", "seaxeious",
	"sebruive", "sedoamee", "seechooity", "seethaness", "seifrooswou", "seizeaable", "sekeable", "seluness",
	"sequeiloity", "seskily", "seweitooal", "shaibleitrou", "shaicleeive", "shaifriment", "shapious", "shapleer",
	"shaseibloed", "shatreful", "sheadrement", "shealeiable", "sheashament", "sheeswued", "sheigieful", "sheivainess",
	"sheiyeeplely", "shierouclus", "shifuable", "shitheely", "shooblieable", "shoofrooless", "shoohouless", "shootietion",
	"shootroual", "shoozumoaful", "shuchoskeied", "shukablieer", "siebrieing", "siegeis", "siesniful", "sifiecreedom",
	"sijoskoness", "siqueaable", "skabeaer", "skaigleament", "skailoodouly", "skaizeeity", "skalaable", "skapleier",
	"skatudooful", "skeabrous", "skeacroution", "skeafraiable", "skeajipooous", "skeemecleing", "skeepreagre", "skesheial",
	"skewinuing", "skiechee", "skiecroaly", "skiegraquis", "skiesteetion", "skiethe", "skifleial", "skigrooful",
	"skilaed", "skituvaious", "skoafleal", "skoapreeive", "skoaprual", "skoaskoaly", "skoawapuful", "skobiezaable",
	"skoosiement", "skoostaive", "skoovicheeed", "skoscie", "skotreayaily", "skoupeaful", "skoutheedom", "skupaed",
	"skuroodom", "slameiing", "slapeedom", "slasus", "slavidrooing", "sleacree", "sleagredom", "sleaheis",
	"sleapieed", "sleaswie", "sleatooous", "slecroas", "slehoaity", "sleijeiful", "sleisteless", "sleiyeaable",
	"sleiyietion", "slekiment", "sliecoaskued", "sliemier", "sliescooly", "sliheipreive", "sliyoa", "sloabeeless",
	"slooblition", "slucroobuful", "snaflotheeer", "snaifuxooed", "snaneity", "snayeaing", "snayeiing", "sneagefoos",
	"sneapealess", "snecotheeive", "sneegration", "sneejeibiful", "sneemealy", "sneepreiive", "sneespeed", "snegoament",
	"sneicheaous", "sneiglei", "sneiyoosceed", "snesoer", "snieduive", "sniefrea", "sniegrai", "snietreful",
	"snietroaing", "snikition", "snilepraful", "sniwiness", "snoafliity", "snoasoospoa", "snoatoable", "snoodouer",
	"snoostoer", "snoswogleaal", "snoswuer", "snoucroful", "snucleeness", "snugloufous", "snustiebais", "snuswooed",
	"snuthoument", "soaceiness", "soaroness", "soasceaness", "soaslailess", "sogroous", "sojailess", "soodrufroed",
	"sootutroable", "sooxiive", "spaiciness", "spaileful", "spaishidom", "spalaiable", "spamaiive", "spaswooous",
	"spatreveous", "spaximieive", "speeflieful", "speehidom", "speenooous", "speflofrial", "spelaikoful", "spicheing",
	"spiejoplieer", "spiequoive", "spoabraial", "spoachis", "spoameiing", "spoapreiive", "spoashoaal", "spoflieive",
	"spoomeaer", "spouhition", "spousniement", "spouve", "spuswachoo", "staicoalie", "staisnoaous", "staitrou",
	"steapriive", "steaskaier", "steechiness", "steefleajies", "steeviement", "steexasuful", "steiskou", "stexouity",
	"stieflaious", "stiefodeaive", "stienooment", "stierouing", "stigleabrual", "stobosneaing", "stocooity", "stoomooly",
	"stoorouable", "stoslootion", "stoupespied", "stousnoaive", "stouyoution", "stoyuive", "studoaive", "stulus",
	"stumoas", "sturibition", "suloer", "suskooed", "susneyealess", "swaifooable", "swaigopreed", "swaimeiing",
	"swaleeity", "swapochaiity", "swaseapoaed", "swatoasci", "swaxeeed", "sweadoaous", "sweadraless", "sweasneaous",
	"sweequoness", "swefreiive", "sweheiing", "sweigroable", "sweivaive", "swexejeetion", "swicliment", "swidaiment",
	"swiecraal", "swiegroheer", "swiewaiwuing", "swiros", "swispejeity", "swiziezaer", "swoahoaing", "swokooment",
	"swoocletion", "swoojiegroos", "swoosleis", "swoovainess", "swopliity", "swoublooity", "swuzasnaable", "tachea",
	"taibo", "taifroument", "taitoed", "talouly", "tasloaing", "teabluly", "teaslaiful", "teazued",
	"tedaier", "teekacouful", "teewaiyou", "teeyecroas", "temocoful", "tepreesleeed", "terieable", "tetroless",
	"thacheiful", "thacleineful", "thaikeaful", "thajiespeity", "thathupoless", "thayudom", "theaseiful", "theathiive",
	"theaxuness", "theaziewoing", "theiblaiwea", "theiluive", "theraless", "thiechaiment", "thiefroness", "thieproa",
	"thiscooed", "thiwoaing", "thizeasloa", "thoasleer", "thoathoadom", "thodietion", "thoodrais", "thooslaiive",
	"thoostailess", "thoscurouous", "thousceeed", "thouviness", "thucreaer", "thureidom", "thusnooable", "tiefrai",
	"tiesution", "tieyotion", "tieyoued", "tiezaition", "tiguswaiive", "tijaxeaal", "tizieed", "tizoous",
	"toabreivies", "toadroous", "toamufraable", "tocouer", "tooplaal", "tooslejou", "tooyaiity", "tospaifaful",
	"touhalaiity", "touspiely", "touzeiable", "trabiepeaity", "trabreaed", "traibrily", "traiskieous", "traisties",
	"traitaness", "traixooly", "tranootheal", "trathie", "traxealy", "treacouless", "treerounieal", "treethooing",
	"treeveiment", "treisliement", "treizoable", "treseaed", "treyeious", "trieskieed", "trieyiive", "trisci",
	"trizoaous", "troacheious", "troagloous", "troajoadom", "troasteiful", "troasweepoer", "troocheous", "trooqueeous",
	"troufreed", "trouplaiable", "troustadom", "trumoofraful", "trumoreition", "truni", "truslieer", "trustaiful",
	"truxeeheial", "tunooing", "vahoslou", "vaicleeive", "vaipopeness", "vaipoploas", "vaivouheidom", "vasneespis",
	"vayusheious", "veazoive", "vedegouness", "veeprument", "veeseful", "vegaily", "vehiyoas", "veiyeous",
	"vejoaer", "vepleable", "vexeing", "viebeipruly", "viefroaer", "viehiment", "vieshaious", "viheity",
	"voagroful", "voahu", "voapaiment", "voaskouer", "voaslieed", "voobruable", "voohied", "voopooing",
	"vooslaous", "voospoual", "voosweaful", "vosneetion", "votraiful", "vouclusealy", "vouprieer", "vousooness",
	"vouyoaness", "vubrieneaive", "vuheitution", "wacloous", "wagaisheeity", "waidraiment", "waitrohuful", "waixaiplouer",
	"watroucaious", "weablaous", "weagleeless", "weajouful", "weastous", "webleeal", "weejoer", "weeswaiable",
	"wegleal", "weidraidom", "weifraied", "weigouing", "weiroive", "weitreable", "welely", "werouzoity",
	"wetheaous", "wicheasladom", "wicuness", "wiebloer", "wiedroo", "wieglecaing", "wiegleedom", "wigroa",
	"wispeasneeed", "wivaing", "woaroaous", "woclesheaing", "wogoojument", "wokaal", "wonouneeed", "woodoagued",
	"wooxacloaal", "wostoive", "woucriespies", "woukeament", "wousnouless", "wovietrieing", "wuvakouly", "wuvokoation",
	"xabuing", "xathoos", "xeaboojaous", "xeacloless", "xecleamament", "xecraziive", "xeeglaity", "xeekeefieed",
	"xeelial", "xeescoodom", "xeewouing", "xeimaitaness", "xeiyoued", "xequusaily", "xicragloos", "xidoaful",
	"xiequaidom", "xievis", "xigrooful", "xoblieive", "xodeistoodom", "xooskieless", "xopoaity", "xoufoogadom",
	"xougoless", "xouroaless", "xouskoaly", "xouwooing", "xouyaiing", "xouyoament", "xoyes", "xuguful",
	"xuskuyeial", "xutouive", "yabooer", "yaidaition", "yaifriness", "yaifroblieed", "yailial", "yaispasleis",
	"yakoer", "yayotion", "yeabrouly", "yeafieed", "yeanaless", "yeaskoozoal", "yeasweily", "yeceableier",
	"yechi", "yeefoubaous", "yeegoafiive", "yeekement", "yeestoaal", "yeexution", "yeixeeneaful", "yeliboing",
	"yesnieing", "yespaful", "yiescai", "yiesteiing", "yiskooment", "yiskoopuing", "yoaflial", "yoafrooing",
	"yoagreadom", "yoawoer", "yoflupeable", "yoleiness", "yooglieous", "yooyieal", "yousceer", "yousweed",
	"youyeeive", "yoxoaness", "yoyeixoation", "yufoospoaly", "yuskeier", "yuzeisheaed", "zabriekoo", "zaijebuive",
	"zaistie", "zaiyutheable", "zarouer", "zeanaibleier", "zeaneas", "zeazieness", "zebeeal", "zeeshoowuing",
	"zeestooed", "zeeswaable", "zeeswacruive", "zeewoed", "zeiflo", "zeisloued", "zeispeis", "zescaier",
	"zidrainess", "ziegreiniful", "ziegroity", "zieshoaed", "zihoament", "zijooer", "zispeaive", "zoabareaing",
	"zoadreamuous", "zoapeied", "zoasaidom", "zokaiment", "zoogretion", "zoosliless", "zoplebrution", "zouqueeless",
	"zucloakuity", "zufleebeidom",
}
