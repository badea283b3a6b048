package catalog

// Catálogo inicial de tópicos. Os prompt contexts descrevem o recorte de
// inglês que o gerador deve cobrir para cada tópico.
var seedTopics = []Topic{
	{Slug: "familia", Label: "Família", Icon: "👨‍👩‍👧‍👦", Kind: TopicKindStandard,
		PromptContext: "Inglês sobre membros da família, relacionamentos e descrições pessoais"},
	{Slug: "comida", Label: "Comida", Icon: "🍔", Kind: TopicKindStandard,
		PromptContext: "Inglês sobre alimentos, restaurantes, culinária e pedidos"},
	{Slug: "viagens", Label: "Viagens", Icon: "✈️", Kind: TopicKindStandard,
		PromptContext: "Inglês para viagens, aeroportos, hotéis e turismo"},
	{Slug: "animais", Label: "Animais", Icon: "🐶", Kind: TopicKindStandard,
		PromptContext: "Inglês sobre animais de estimação, selvagens e natureza"},
	{Slug: "escola", Label: "Escola", Icon: "📚", Kind: TopicKindStandard,
		PromptContext: "Inglês sobre escola, materiais, matérias e sala de aula"},
	{Slug: "hobbies", Label: "Hobbies", Icon: "🎨", Kind: TopicKindStandard,
		PromptContext: "Inglês sobre passatempos, esportes, música e lazer"},

	{Slug: "entrevista", Label: "Entrevista", Icon: "🤝", Kind: TopicKindFluency,
		PromptContext: "Simulação de entrevista de emprego em inglês, perguntas comuns e respostas profissionais"},
	{Slug: "debate", Label: "Debate", Icon: "🗣️", Kind: TopicKindFluency,
		PromptContext: "Inglês para argumentação, expressar opiniões e concordar/discordar"},
	{Slug: "narrativa", Label: "Narrativa", Icon: "📖", Kind: TopicKindFluency,
		PromptContext: "Inglês para contar histórias passadas, experiências pessoais e memórias"},

	{Slug: "present_tenses", Label: "Presente (Simple & Continuous)", Kind: TopicKindGrammar,
		PromptContext: "Exercícios de Present Simple e Present Continuous"},
	{Slug: "past_tenses", Label: "Passado (Simple & Continuous)", Kind: TopicKindGrammar,
		PromptContext: "Exercícios de Past Simple e Past Continuous"},
	{Slug: "future", Label: "Futuro (Will & Going to)", Kind: TopicKindGrammar,
		PromptContext: "Exercícios de futuro com Will e Going to"},
	{Slug: "prepositions", Label: "Preposições (In, On, At)", Kind: TopicKindGrammar,
		PromptContext: "Uso correto de preposições de tempo e lugar"},
	{Slug: "conditionals", Label: "Condicionais (If clauses)", Kind: TopicKindGrammar,
		PromptContext: "Zero, First, Second and Third Conditionals"},
	{Slug: "modals", Label: "Verbos Modais", Kind: TopicKindGrammar,
		PromptContext: "Can, Could, Should, Must, Might"},
	{Slug: "passive", Label: "Voz Passiva", Kind: TopicKindGrammar,
		PromptContext: "Transformação de ativa para passiva e uso"},

	{Slug: "present_simple", Label: "Present Simple", Kind: TopicKindTheory,
		PromptContext: "Present Simple"},
	{Slug: "present_continuous", Label: "Present Continuous", Kind: TopicKindTheory,
		PromptContext: "Present Continuous"},
	{Slug: "past_simple", Label: "Past Simple", Kind: TopicKindTheory,
		PromptContext: "Past Simple"},
	{Slug: "future_will", Label: "Future (Will)", Kind: TopicKindTheory,
		PromptContext: "Future (Will)"},
	{Slug: "articles", Label: "Articles (A/An/The)", Kind: TopicKindTheory,
		PromptContext: "Articles (A/An/The)"},
	{Slug: "pronouns", Label: "Pronouns", Kind: TopicKindTheory,
		PromptContext: "Pronouns"},
}

// SeedTopics expõe uma cópia do catálogo inicial, para semear o banco e para
// os testes.
func SeedTopics() []Topic {
	out := make([]Topic, len(seedTopics))
	copy(out, seedTopics)
	return out
}
