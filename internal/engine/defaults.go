package engine

import "strconv"

// defaultTaskTitles is the built-in party checklist. Every default task
// uses its title as the description and shares one category, so the list
// is kept as titles only and expanded in DefaultTasks.
var defaultTaskTitles = []string{
	"Kerro kumpi pärjäisi paremmin zombiapocalypsessä - Veera vai Jani. Perustele",
	"Kerro sankareista hauska/lempi yhteismuisto",
	"Kirjoita onnitteluruno",
	"Löydä tonttu Veeran ja Janin kotoa",
	"Voita pöytäfutiksessa",
	"Taittele lautasliinasta origami",
	"Suostuttele tuntematon ihminen onnittelemaan sankareita",
	"Ota kuva kaikista juhlijoista",
	"Soita sankareiden lemibiisi ja tanssi",
	"Piirrä muotokuva yhdestä sankareista",
	"Pikkujekku",
	"Kommentoi toisten sanomiin asioihin \"voi pojat\".",
	"Kerro yksi hauska fakta itsestäsi jollekin, joka ei sitä tiedä",
	"Selvitä kolmelta vieraalta, mitkä ovat heidän lempi Disney-elokuvansa / Pokemoninsa",
	"Esitä tunnettu mainos tai elokuvarepliikki",
	"Etsi vieras, jolla on sama kengännumero kuin sinulla",
	"Etsi kaksi muuta, joilla on synttärit samana kuukautena kuin sinulla.",
	"Selvitä Uuden Saunan omistajan etunimi (ilman googlea)",
	"Ota salaselfie vieruskaverin kanssa (siten ettei hän huomaa)",
	"Muistele milloin tapasit sankarit ensimmäisen kerran ja millainen kohtaaminen oli",
	"Jaa paras neuvo 30:selle",
	"Laula onnittelulaulu sankareille julkisella paikalla",
	"Ryömi pöydän ali",
	"Lennätä paperilennokkia vähintään 5 metriä",
	"Nimeä oikein kaikki talon viherkasvit",
	"Kerro vitsi, joka saa koko saunaporukan nauramaan",
	"Välivesi",
	"Käy viilentävässä vesikylvyssä saunan jälkeen",
	"Ole viimeinen synttäriporukasta, joka poistuu lauteilta (sillä hetkellä)",
	"Kehu kaveria",
}

const defaultCategory = "Synttärijuhlat"

// DefaultTasks returns a fresh copy of the built-in catalog. IDs are
// stable 1-based strings so stored progress keeps matching across resets.
func DefaultTasks() []Task {
	tasks := make([]Task, len(defaultTaskTitles))
	for i, title := range defaultTaskTitles {
		tasks[i] = Task{
			ID:          strconv.Itoa(i + 1),
			Title:       title,
			Description: title,
			Category:    defaultCategory,
		}
	}
	return tasks
}
