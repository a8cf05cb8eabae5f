// Package prompt builds the three generation prompts of the PDI session.
// The templates are the product's content and stay in Portuguese; every
// quantitative instruction inside them (3-5, 2-4, 1-3 items) is addressed
// to the generator and is not validated locally.
package prompt

import (
	"fmt"
	"strings"
)

// DiagnosticInput carries everything interpolated into the diagnostic
// prompt. Empty fields are embedded as-is; the generator tolerates them.
type DiagnosticInput struct {
	PersonSummary      string
	Feedback           string
	Strengths          string
	DevelopmentPoints  string
	RoleTasks          string
	CareerObjectives   string
	InteractionHistory string
	WeeklySummaries    string
}

// Diagnostic builds the diagnostic prompt: a four-part structured
// assessment grounded in the person's accumulated answers and context.
func Diagnostic(in DiagnosticInput) string {
	return fmt.Sprintf(`Nesse momento, você como especialista deverá fazer um diagnóstico que ajude a pessoa a tomar a decisão do que pode fazer mais sentido se desenvolver.
Para isso, aqui estão algumas informações da pessoa %s.
O feedback, caso a pessoa tenha, foi esse aqui %s.
Os pontos fortes são: %s e os pontos de desenvolvimento são: %s.
Na tarefa atual essas são as tarefas e um pouco de como ela é: %s.
E os objetivos são: %s e que tem o seguinte histórico de interação com você: %s.
Leve em consideração também, para mapear as tarefas e dificuldades, os relatórios semanais da pessoa %s.
Retorne esse diagnóstico com a seguinte estrutura e oferecendo argumentos e os motivos.
1- Resumo da pessoa até o momento:
2- Gaps na posição atual e direcional para a posição atual:
3- Futuro dado posição atual e objetivos de carreira:
4- Indicações de pontos de desenvolvimento: (Citando competências, habilidades e atitudes que dado as informações a pessoa deveria considerar desenvolver, bem como os motivos.)`,
		in.PersonSummary,
		in.Feedback,
		in.Strengths,
		in.DevelopmentPoints,
		in.RoleTasks,
		in.CareerObjectives,
		in.InteractionHistory,
		in.WeeklySummaries,
	)
}

// PlanInput carries everything interpolated into the PDI prompt.
type PlanInput struct {
	Diagnostic      string
	RoleTasks       string
	WeeklySummaries string
	// Competencies holds the 1-2 development focuses chosen by the
	// person after reading the diagnostic.
	Competencies []string
}

// Plan builds the PDI generation prompt in the 70-20-10 structure.
func Plan(in PlanInput) string {
	focuses := fmt.Sprintf("[%s]", strings.Join(in.Competencies, ", "))

	return fmt.Sprintf(`Você é um especialista em desenvolvimento de carreira e deverá criar um Plano de Desenvolvimento Individual (PDI) de alta qualidade.

Use as informações do diagnóstico inicial abaixo como base para montar o PDI:

%s

Além disso, utilize as informações reais de %s e %s para sugerir atividades práticas que façam sentido no contexto do dia a dia da pessoa.

Estruture o PDI no modelo 70-20-10, separado por competência para os seguintes pontos de desenvolvimento escolhidos pela pessoa %s.
Para cada competência identificada no diagnóstico, siga esta estrutura:

### Competência: [nome da competência]

**Objetivo de Desenvolvimento**
Descreva o objetivo principal para esta competência, resumido em 2-3 linhas.

**70%% Atividades práticas (on the job)**
Liste de 3 a 5 atividades diretamente conectadas às tarefas e aos relatórios semanais da pessoa.
Cada atividade deve ser descrita no formato SMART.

**20%% Aprendizagem com os outros**
Liste de 2 a 4 atividades informais (mentorias, feedbacks, shadowing etc.), conectadas às tarefas e aos relatórios semanais, no formato SMART.

**10%% Cursos e treinamentos**
Indique de 1 a 3 formações formais relacionadas à competência.

--- Regras ---
- O PDI deve ter múltiplas competências, cada uma com sua própria estrutura.
- Nas seções 70%% e 20%%, use as tarefas e os relatórios semanais para alinhar à realidade.
- Todas as metas devem estar no formato SMART.
- Conecte os objetivos de desenvolvimento ao impacto esperado no negócio.`,
		in.Diagnostic,
		in.RoleTasks,
		in.WeeklySummaries,
		focuses,
	)
}

// Reformat builds the prompt that converts a finalized PDI into the
// strict repeating key-value layout consumed downstream. No count limit
// is imposed locally; the layout repeats per competency for as many
// tasks as the PDI lists.
func Reformat(pdi string) string {
	return fmt.Sprintf(`A partir do PDI a seguir, retorne no seguinte formato, mantendo sempre ele:

'Nome do objetivo 1': (A competência ou o fator que a pessoa deverá desenvolver nesse ciclo);
'Descrição objetivo 1': (Descrição contida no texto do motivo e o que deve ser feito. Pode manter quase tudo dessa competência);
'Tarefa 1': Tarefa que no texto diz que deve ser feito;
'Tarefa 2': Outra tarefa que deve ser feita;
'Tarefa 3': Outra tarefa que deve ser feita;
'Tarefa ...': Outra tarefa que deve ser feita;
Até a tarefa que estiver listada no PDI

Em seguida, faça o mesmo para a segunda competência, caso exista:
'Nome do objetivo 2': ...
'Descrição objetivo 2': ...
'Tarefa 1': ...
'Tarefa 2': ...
'Tarefa ...': Outra tarefa que deve ser feita;
Até a tarefa que estiver listada no PDI
PDI fornecido:
%s`, pdi)
}
