package i18n

type entry struct {
	key, de, fr string
}

// messages holds the translations. English uses the key itself.
var messages = []entry{
	{"Gradebook", "Notenbuch", "Carnet de notes"},
	{"Tables", "Tabellen", "Tableaux"},
	{"Report", "Bericht", "Bulletin"},
	{"Export to clipboard", "In die Zwischenablage kopieren", "Copier dans le presse-papiers"},
	{"Language", "Sprache", "Langue"},
	{"Quit", "Beenden", "Quitter"},
	{"Back", "Zurück", "Retour"},
	{"Invalid input", "Ungültige Eingabe", "Saisie invalide"},
	{"Press any key to continue", "Weiter mit beliebiger Taste", "Appuyez sur une touche pour continuer"},
	{"Enter to save, Esc to cancel", "Enter speichert, Esc bricht ab", "Entrée pour valider, Échap pour annuler"},
	{"Yes", "Ja", "Oui"},
	{"No", "Nein", "Non"},

	{"New table", "Neue Tabelle", "Nouveau tableau"},
	{"No tables yet", "Noch keine Tabellen", "Aucun tableau"},
	{"e.g. Spring term", "z. B. Frühlingssemester", "p. ex. Semestre de printemps"},
	{"A table named %q already exists", "Eine Tabelle namens %q existiert bereits", "Un tableau nommé %q existe déjà"},
	{"modified %s", "geändert %s", "modifié %s"},
	{"Subjects", "Fächer", "Branches"},
	{"Rename", "Umbenennen", "Renommer"},
	{"Delete", "Löschen", "Supprimer"},
	{"Rename table", "Tabelle umbenennen", "Renommer le tableau"},
	{"Delete table %q?", "Tabelle %q löschen?", "Supprimer le tableau %q ?"},
	{"Table was removed", "Tabelle wurde entfernt", "Le tableau a été supprimé"},

	{"New subject", "Neues Fach", "Nouvelle branche"},
	{"New subject in %s", "Neues Fach in %s", "Nouvelle branche dans %s"},
	{"e.g. Mathematics", "z. B. Mathematik", "p. ex. Mathématiques"},
	{"A subject named %q already exists", "Ein Fach namens %q existiert bereits", "Une branche nommée %q existe déjà"},
	{"Similar to %s", "Ähnlich wie %s", "Semblable à %s"},
	{"No grades yet", "Noch keine Noten", "Aucune note"},
	{"Average %s", "Schnitt %s", "Moyenne %s"},
	{"Average %s, points %s, %s", "Schnitt %s, Punkte %s, %s", "Moyenne %s, points %s, %s"},
	{"passed", "bestanden", "réussi"},
	{"failed", "nicht bestanden", "échoué"},

	{"Add grade", "Note hinzufügen", "Ajouter une note"},
	{"New grade in %s", "Neue Note in %s", "Nouvelle note en %s"},
	{"Note (optional)", "Bemerkung (optional)", "Remarque (facultatif)"},
	{"Delete grade %s?", "Note %s löschen?", "Supprimer la note %s ?"},
	{"Grades go from %v to %v", "Noten gehen von %v bis %v", "Les notes vont de %v à %v"},
	{"Weight must be positive", "Die Gewichtung muss positiv sein", "La pondération doit être positive"},
	{"Enter a number such as 5.5 or 5.5*2", "Zahl wie 5.5 oder 5.5*2 eingeben", "Saisissez un nombre comme 5.5 ou 5.5*2"},

	{"Subject", "Fach", "Branche"},
	{"Grades", "Noten", "Notes"},
	{"Average", "Schnitt", "Moyenne"},
	{"Rounded", "Gerundet", "Arrondi"},
	{"Points", "Punkte", "Points"},
	{"Clipboard is not available", "Die Zwischenablage ist nicht verfügbar", "Le presse-papiers n'est pas disponible"},
	{"Copy failed: %v", "Kopieren fehlgeschlagen: %v", "Échec de la copie : %v"},
	{"Copied %q to the clipboard", "%q in die Zwischenablage kopiert", "%q copié dans le presse-papiers"},
}

// countText is a message selected by the plural form of its first argument.
type countText struct {
	key        string
	en, de, fr [2]string
}

var counts = []countText{
	{
		key: "%d subjects",
		en:  [2]string{"%d subject", "%d subjects"},
		de:  [2]string{"%d Fach", "%d Fächer"},
		fr:  [2]string{"%d branche", "%d branches"},
	},
}
