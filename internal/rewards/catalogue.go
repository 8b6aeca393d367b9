// Package rewards holds the built-in reward catalogue and the selection
// rule used at session completion.
package rewards

import "stehauf/internal/history"

func fact(kind history.RewardKind, text string) history.Reward {
	return history.Reward{Kind: kind, Text: text}
}

func quiz(question, answer string) history.Reward {
	return history.Reward{Kind: history.KindQuiz, Question: question, Answer: answer}
}

// Catalogue is the closed set of built-in rewards across all kinds.
var Catalogue = []history.Reward{
	fact(history.KindFact, "Die Chinesische Mauer ist über 21.000 Kilometer lang."),
	fact(history.KindFact, "Der Kölner Dom wurde erst 1880 fertiggestellt, über 600 Jahre nach Baubeginn."),
	fact(history.KindFact, "Das erste Telefonbuch Deutschlands erschien 1881 und hatte 99 Einträge."),
	fact(history.KindFact, "Die Berliner U-Bahn fuhr erstmals im Jahr 1902."),

	fact(history.KindScience, "Honig verdirbt praktisch nie; genießbarer Honig wurde in ägyptischen Gräbern gefunden."),
	fact(history.KindScience, "Ein Blitz ist etwa fünfmal heißer als die Oberfläche der Sonne."),
	fact(history.KindScience, "Wasser kann bei Raumtemperatur kochen, wenn der Luftdruck niedrig genug ist."),
	fact(history.KindScience, "Der menschliche Körper enthält genug Kohlenstoff für rund 9.000 Bleistifte."),

	fact(history.KindTrivia, "Die kürzeste Kriegserklärung der Geschichte dauerte 38 Minuten."),
	fact(history.KindTrivia, "Oktopusse haben drei Herzen und blaues Blut."),
	fact(history.KindTrivia, "In Venedig gibt es mehr als 400 Brücken."),
	fact(history.KindTrivia, "Eine Wolke kann mehrere hundert Tonnen wiegen."),

	fact(history.KindEnergy, "Eine Stunde Sonneneinstrahlung auf die Erde deckt rechnerisch den Weltenergiebedarf eines Jahres."),
	fact(history.KindEnergy, "Stand-by-Geräte verursachen in deutschen Haushalten Milliardenkosten pro Jahr."),
	fact(history.KindEnergy, "Windkraft war 2023 die wichtigste Stromquelle Deutschlands."),
	fact(history.KindEnergy, "LED-Lampen benötigen rund 85 Prozent weniger Strom als Glühbirnen."),

	quiz("Was ist die Hauptstadt von Australien?", "Canberra"),
	quiz("Wie viele Knochen hat ein erwachsener Mensch?", "206"),
	quiz("In welchem Jahr fiel die Berliner Mauer?", "1989"),
	quiz("Welches chemische Element hat das Symbol 'Au'?", "Gold"),
}
