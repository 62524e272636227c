package handlers

// минимальная разметка, слой представления вне основной логики
const pagesHTML = `
{{define "login"}}
<!DOCTYPE html>
<html><head><title>Login</title></head><body>
<h2>Login</h2>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/login">
  <input type="email" name="email" placeholder="Email" value="{{index .Values "email"}}" required>
  <input type="password" name="password" placeholder="Password" required>
  <button type="submit">Login</button>
</form>
<p>No account? <a href="/register">Create Account</a></p>
</body></html>
{{end}}

{{define "register"}}
<!DOCTYPE html>
<html><head><title>Create Account</title></head><body>
<h2>Create Account</h2>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/register">
  <input type="text" name="name" placeholder="Name" value="{{index .Values "name"}}" required>
  <input type="email" name="email" placeholder="Email" value="{{index .Values "email"}}" required>
  <input type="password" name="password" placeholder="Password" required>
  <input type="password" name="password_confirmation" placeholder="Confirm Password" required>
  <button type="submit">Create Account</button>
</form>
<p>Already have an account? <a href="/login">Login</a></p>
</body></html>
{{end}}

{{define "dashboard"}}
<!DOCTYPE html>
<html><head><title>Task Dashboard</title></head><body>
<h1>Task Dashboard</h1>
<form method="post" action="/logout"><button type="submit">Log Out</button></form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="get" action="/dashboard">
  <select name="status" onchange="this.form.submit()">
    <option value="all" {{if eq .Filter "all"}}selected{{end}}>All Tasks</option>
    {{$filter := .Filter}}
    {{range .Statuses}}
    <option value="{{.}}" {{if eq $filter (printf "%s" .)}}selected{{end}}>{{.}}</option>
    {{end}}
  </select>
</form>
{{if not .Tasks}}
<p>No tasks found</p>
{{else}}
<ul>
  {{range .Tasks}}
  <li>
    <h3>{{.Title}}</h3>
    <span>{{.Status}}</span>
    <p>{{.Description}}</p>
    <p>Due Date: {{.DueDate}}</p>
    <a href="/tasks/edit/{{.ID}}">Edit</a>
    <form method="post" action="/tasks/delete/{{.ID}}"><button type="submit">Delete</button></form>
  </li>
  {{end}}
</ul>
{{end}}
<a href="/tasks/create">+ Add New Task</a>
<a href="/categories/create">+ Add Category</a>
</body></html>
{{end}}

{{define "task_form"}}
<!DOCTYPE html>
<html><head><title>{{.Title}}</title></head><body>
<h2>{{.Title}}</h2>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="{{.Action}}">
  <input type="text" name="title" placeholder="Task Title" value="{{index .Values "title"}}" required>
  {{range index .Errors "title"}}<p class="error">{{.}}</p>{{end}}
  <textarea name="description" placeholder="Task Description" required>{{index .Values "description"}}</textarea>
  {{range index .Errors "description"}}<p class="error">{{.}}</p>{{end}}
  <select name="status" required>
    {{$status := index .Values "status"}}
    {{range .Statuses}}
    <option value="{{.}}" {{if eq $status (printf "%s" .)}}selected{{end}}>{{.}}</option>
    {{end}}
  </select>
  {{range index .Errors "status"}}<p class="error">{{.}}</p>{{end}}
  <select name="category_id" required>
    <option value="">Select Category</option>
    {{$categoryID := index .Values "category_id"}}
    {{range .Categories}}
    <option value="{{.ID}}" {{if eq $categoryID (printf "%d" .ID)}}selected{{end}}>{{.Name}}</option>
    {{end}}
  </select>
  {{range index .Errors "category_id"}}<p class="error">{{.}}</p>{{end}}
  <input type="date" name="due_date" value="{{index .Values "due_date"}}" required>
  {{range index .Errors "due_date"}}<p class="error">{{.}}</p>{{end}}
  <button type="submit">Save</button>
</form>
<a href="/dashboard">Back</a>
</body></html>
{{end}}

{{define "category_form"}}
<!DOCTYPE html>
<html><head><title>Create Category</title></head><body>
<h2>Create Category</h2>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/categories/create">
  <input type="text" name="name" placeholder="Category Name" value="{{index .Values "name"}}" required>
  {{range index .Errors "name"}}<p class="error">{{.}}</p>{{end}}
  <button type="submit">Create Category</button>
</form>
<a href="/dashboard">Back</a>
</body></html>
{{end}}

{{define "error"}}
<!DOCTYPE html>
<html><head><title>Error</title></head><body>
<p class="error">{{.Message}}</p>
<a href="/dashboard">Back to dashboard</a>
</body></html>
{{end}}
`
